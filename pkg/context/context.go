package context

import (
	"context"
)

const CommandIDKey = "command_id"

func WithCommandID(ctx context.Context, commandID string) context.Context {
	return context.WithValue(ctx, CommandIDKey, commandID)
}

func GetCommandID(ctx context.Context) string {
	commandID, ok := ctx.Value(CommandIDKey).(string)
	if !ok || commandID == "" {
		return "unknown"
	}
	return commandID
}
