package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/acolita/curator/internal/config"
	"github.com/acolita/curator/internal/generator"
)

// maxTotalChars bounds length*count for a single tool call.
const maxTotalChars = 1 << 20

// registerTools registers all MCP tools with the server.
func (s *Server) registerTools() {
	s.mcpServer.AddTool(generatePasswordTool(), s.handleGeneratePassword)
	s.mcpServer.AddTool(listClassesTool(), s.handleListClasses)
}

func generatePasswordTool() mcp.Tool {
	return mcp.NewTool("generate_password",
		mcp.WithDescription(`Generate random passwords from a cryptographically secure source.

Each character first picks one enabled class uniformly, then one character of
that class uniformly. At least one class must be enabled.`),
		mcp.WithNumber("length",
			mcp.Description("Characters per password (default: 8)"),
		),
		mcp.WithNumber("count",
			mcp.Description("Number of passwords (default: 1)"),
		),
		mcp.WithBoolean("digits",
			mcp.Description("Include 0-9"),
		),
		mcp.WithBoolean("lowercase",
			mcp.Description("Include a-z"),
		),
		mcp.WithBoolean("uppercase",
			mcp.Description("Include A-Z"),
		),
		mcp.WithBoolean("special",
			mcp.Description(`Include !?#$_%&*+,./\:;^~[]`),
		),
	)
}

func listClassesTool() mcp.Tool {
	return mcp.NewTool("list_classes",
		mcp.WithDescription("List the character classes and the characters each one contributes"),
	)
}

// generateResult is the JSON body of a successful generate_password call.
type generateResult struct {
	Length    int      `json:"length"`
	Classes   []string `json:"classes"`
	Passwords []string `json:"passwords"`
}

func (s *Server) handleGeneratePassword(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	length := mcp.ParseInt(req, "length", config.DefaultLength)
	count := mcp.ParseInt(req, "count", config.DefaultCount)

	gen, err := s.newGenerator()
	if err != nil {
		slog.Error("generator unavailable", slog.String("error", err.Error()))
		return mcp.NewToolResultError(err.Error()), nil
	}

	for _, c := range generator.AllClasses() {
		if mcp.ParseBoolean(req, c.String(), false) {
			gen.Enable(c)
		}
	}

	// A missing class is reported before any bad number.
	if len(gen.Enabled()) == 0 {
		return mcp.NewToolResultError(generator.ErrNoPoolEnabled.Error()), nil
	}
	if length < 0 {
		return mcp.NewToolResultError(generator.ErrInvalidLength.Error()), nil
	}
	if count < 0 {
		return mcp.NewToolResultError(generator.ErrInvalidCount.Error()), nil
	}
	if count > 0 && length > maxTotalChars/count {
		return mcp.NewToolResultError(fmt.Sprintf("length*count must not exceed %d characters", maxTotalChars)), nil
	}

	passwords, err := gen.GenerateMany(length, count)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	classes := make([]string, 0, 4)
	for _, c := range gen.Enabled() {
		classes = append(classes, c.String())
	}

	slog.Debug("generated passwords",
		slog.Int("length", length),
		slog.Int("count", count),
		slog.Any("classes", classes),
	)

	return jsonResult(generateResult{
		Length:    length,
		Classes:   classes,
		Passwords: passwords,
	})
}

type classInfo struct {
	Name       string `json:"name"`
	Characters string `json:"characters"`
}

func (s *Server) handleListClasses(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	classes := make([]classInfo, 0, 4)
	for _, c := range generator.AllClasses() {
		classes = append(classes, classInfo{Name: c.String(), Characters: c.Charset()})
	}
	return jsonResult(classes)
}

// jsonResult converts a value to a JSON tool result.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
