package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	openai "github.com/sashabaranov/go-openai"
	"github.com/sashabaranov/go-openai/jsonschema"

	"github.com/dreamcatcher-app/dreamcatcher-server/internal/logger"
	"github.com/dreamcatcher-app/dreamcatcher-server/internal/models"
)

// ErrAssistantNoAnswer is returned when the model never produces a final
// text answer within the tool-call budget.
var ErrAssistantNoAnswer = errors.New("assistant produced no answer")

// maxToolRounds bounds the completion loop for one conversational turn.
const maxToolRounds = 8

// ChatCompleter is the slice of the OpenAI-compatible client the
// assistant needs.
type ChatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// PlanManager is the slice of PlanService exposed to assistant tools.
// Tools are callers of the business rules, never a second implementation.
type PlanManager interface {
	List(ctx context.Context, userID uuid.UUID, offset, limit int) ([]models.PlanDB, error)
	Create(ctx context.Context, userID uuid.UUID, draft models.PlanCreate) (*models.PlanDB, error)
	Update(ctx context.Context, planID, userID uuid.UUID, patch models.PlanPatch) (*models.PlanDB, error)
	Delete(ctx context.Context, planID, userID uuid.UUID) (bool, error)
}

// LocationResolver resolves a place name to coordinates.
type LocationResolver interface {
	ResolveCoordinates(ctx context.Context, name string) (lon, lat float64, err error)
}

// WeatherProvider returns weather for a point in time.
type WeatherProvider interface {
	GetWeather(ctx context.Context, lat, lon float64, dt int64) (json.RawMessage, error)
}

// AssistantService drives one conversational turn against an
// OpenAI-compatible model with plan-management and lookup tools.
type AssistantService struct {
	llm      ChatCompleter
	model    string
	plans    PlanManager
	geocoder LocationResolver
	weather  WeatherProvider
	now      func() time.Time
}

// NewAssistantService creates a new AssistantService.
func NewAssistantService(llm ChatCompleter, model string, plans PlanManager, geocoder LocationResolver, weather WeatherProvider, now func() time.Time) *AssistantService {
	if now == nil {
		now = time.Now
	}
	return &AssistantService{
		llm:      llm,
		model:    model,
		plans:    plans,
		geocoder: geocoder,
		weather:  weather,
		now:      now,
	}
}

const systemPrompt = `You are the shoot-planning assistant. You help the user manage their ` +
	`photography shoot plans and answer questions about locations and weather. ` +
	`Use the available tools to look up, create, update or delete the user's plans. ` +
	`Plans always belong to the current user; you never see other users' plans. ` +
	`When you perform an operation, state clearly which tools you called and what the result was. ` +
	`Times are in RFC3339 format.`

func (s *AssistantService) toolDefinitions() []openai.Tool {
	fn := func(name, description string, params jsonschema.Definition) openai.Tool {
		return openai.Tool{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        name,
				Description: description,
				Parameters:  params,
			},
		}
	}

	noArgs := jsonschema.Definition{Type: jsonschema.Object, Properties: map[string]jsonschema.Definition{}}
	cameraSchema := jsonschema.Definition{
		Type: jsonschema.Object,
		Properties: map[string]jsonschema.Definition{
			"focal_length": {Type: jsonschema.Number, Description: "Lens focal length in millimeters"},
			"position":     {Type: jsonschema.Array, Items: &jsonschema.Definition{Type: jsonschema.Number}, Description: "Camera position, 3 floats"},
			"rotation":     {Type: jsonschema.Array, Items: &jsonschema.Definition{Type: jsonschema.Number}, Description: "Camera rotation quaternion, 4 floats"},
		},
		Required: []string{"focal_length", "position", "rotation"},
	}

	return []openai.Tool{
		fn("get_current_time", "Get the current time in RFC3339 format", noArgs),
		fn("search_location", "Resolve a place name to longitude and latitude", jsonschema.Definition{
			Type: jsonschema.Object,
			Properties: map[string]jsonschema.Definition{
				"name": {Type: jsonschema.String, Description: "Place name to search for"},
			},
			Required: []string{"name"},
		}),
		fn("get_weather", "Get weather for coordinates at a Unix timestamp", jsonschema.Definition{
			Type: jsonschema.Object,
			Properties: map[string]jsonschema.Definition{
				"lat": {Type: jsonschema.Number},
				"lon": {Type: jsonschema.Number},
				"dt":  {Type: jsonschema.Integer, Description: "Unix timestamp of the moment of interest"},
			},
			Required: []string{"lat", "lon", "dt"},
		}),
		fn("list_plans", "List the current user's shoot plans", noArgs),
		fn("create_plan", "Create a new shoot plan for the current user", jsonschema.Definition{
			Type: jsonschema.Object,
			Properties: map[string]jsonschema.Definition{
				"name":        {Type: jsonschema.String},
				"description": {Type: jsonschema.String},
				"start_time":  {Type: jsonschema.String, Description: "RFC3339 start time, must be in the future"},
				"camera":      cameraSchema,
				"tileset_url": {Type: jsonschema.String},
			},
			Required: []string{"name", "start_time", "camera", "tileset_url"},
		}),
		fn("update_plan", "Update fields of one of the current user's shoot plans", jsonschema.Definition{
			Type: jsonschema.Object,
			Properties: map[string]jsonschema.Definition{
				"plan_id":     {Type: jsonschema.String},
				"name":        {Type: jsonschema.String},
				"description": {Type: jsonschema.String},
				"start_time":  {Type: jsonschema.String, Description: "RFC3339 start time, must be in the future"},
				"tileset_url": {Type: jsonschema.String},
			},
			Required: []string{"plan_id"},
		}),
		fn("delete_plan", "Delete one of the current user's shoot plans", jsonschema.Definition{
			Type: jsonschema.Object,
			Properties: map[string]jsonschema.Definition{
				"plan_id": {Type: jsonschema.String},
			},
			Required: []string{"plan_id"},
		}),
	}
}

// Chat runs one conversational turn for the authenticated user. Tools are
// closed over the session's user identity; arguments generated by the
// model cannot redirect an operation to another user's data.
func (s *AssistantService) Chat(ctx context.Context, userID uuid.UUID, query string) (string, error) {
	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
		{Role: openai.ChatMessageRoleUser, Content: query},
	}
	tools := s.toolDefinitions()

	for round := 0; round < maxToolRounds; round++ {
		resp, err := s.llm.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model:    s.model,
			Messages: messages,
			Tools:    tools,
		})
		if err != nil {
			logger.Log.Errorw("chat completion failed", "error", err)
			return "", err
		}
		if len(resp.Choices) == 0 {
			return "", ErrAssistantNoAnswer
		}

		msg := resp.Choices[0].Message
		if len(msg.ToolCalls) == 0 {
			return msg.Content, nil
		}

		messages = append(messages, msg)
		for _, call := range msg.ToolCalls {
			result := s.dispatchTool(ctx, userID, call.Function.Name, call.Function.Arguments)
			logger.Log.Infow("assistant tool call", "tool", call.Function.Name, "user_id", userID)
			messages = append(messages, openai.ChatCompletionMessage{
				Role:       openai.ChatMessageRoleTool,
				Content:    result,
				ToolCallID: call.ID,
			})
		}
	}

	return "", ErrAssistantNoAnswer
}

// dispatchTool executes one tool call and serializes the outcome. Tool
// failures are reported back to the model as text so a single failed call
// never aborts the turn.
func (s *AssistantService) dispatchTool(ctx context.Context, userID uuid.UUID, name, arguments string) string {
	result, err := s.callTool(ctx, userID, name, arguments)
	if err != nil {
		return fmt.Sprintf(`{"error": %q}`, err.Error())
	}
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Sprintf(`{"error": %q}`, err.Error())
	}
	return string(data)
}

func (s *AssistantService) callTool(ctx context.Context, userID uuid.UUID, name, arguments string) (any, error) {
	switch name {
	case "get_current_time":
		return map[string]string{"current_time": s.now().UTC().Format(time.RFC3339)}, nil

	case "search_location":
		var args struct {
			Name string `json:"name"`
		}
		if err := json.Unmarshal([]byte(arguments), &args); err != nil {
			return nil, err
		}
		lon, lat, err := s.geocoder.ResolveCoordinates(ctx, args.Name)
		if err != nil {
			return nil, err
		}
		return map[string]float64{"lon": lon, "lat": lat}, nil

	case "get_weather":
		var args struct {
			Lat float64 `json:"lat"`
			Lon float64 `json:"lon"`
			Dt  int64   `json:"dt"`
		}
		if err := json.Unmarshal([]byte(arguments), &args); err != nil {
			return nil, err
		}
		return s.weather.GetWeather(ctx, args.Lat, args.Lon, args.Dt)

	case "list_plans":
		return s.plans.List(ctx, userID, 0, 100)

	case "create_plan":
		var args struct {
			Name        string        `json:"name"`
			Description *string       `json:"description"`
			StartTime   string        `json:"start_time"`
			Camera      models.Camera `json:"camera"`
			TilesetURL  string        `json:"tileset_url"`
		}
		if err := json.Unmarshal([]byte(arguments), &args); err != nil {
			return nil, err
		}
		startTime, err := models.ParseTimestamp(args.StartTime)
		if err != nil {
			return nil, fmt.Errorf("invalid start_time: %w", err)
		}
		return s.plans.Create(ctx, userID, models.PlanCreate{
			Name:        args.Name,
			Description: args.Description,
			StartTime:   startTime,
			Camera:      args.Camera,
			TilesetURL:  args.TilesetURL,
		})

	case "update_plan":
		var args struct {
			PlanID      string  `json:"plan_id"`
			Name        *string `json:"name"`
			Description *string `json:"description"`
			StartTime   *string `json:"start_time"`
			TilesetURL  *string `json:"tileset_url"`
		}
		if err := json.Unmarshal([]byte(arguments), &args); err != nil {
			return nil, err
		}
		planID, err := uuid.Parse(args.PlanID)
		if err != nil {
			return nil, fmt.Errorf("invalid plan_id: %w", err)
		}
		patch := models.PlanPatch{
			Name:        args.Name,
			Description: args.Description,
			TilesetURL:  args.TilesetURL,
		}
		if args.StartTime != nil {
			startTime, err := models.ParseTimestamp(*args.StartTime)
			if err != nil {
				return nil, fmt.Errorf("invalid start_time: %w", err)
			}
			patch.StartTime = &startTime
		}
		return s.plans.Update(ctx, planID, userID, patch)

	case "delete_plan":
		var args struct {
			PlanID string `json:"plan_id"`
		}
		if err := json.Unmarshal([]byte(arguments), &args); err != nil {
			return nil, err
		}
		planID, err := uuid.Parse(args.PlanID)
		if err != nil {
			return nil, fmt.Errorf("invalid plan_id: %w", err)
		}
		deleted, err := s.plans.Delete(ctx, planID, userID)
		if err != nil {
			return nil, err
		}
		return map[string]bool{"deleted": deleted}, nil

	default:
		return nil, fmt.Errorf("unknown tool %q", name)
	}
}
