package graph

import (
	"context"

	"crm-be/internal/utils"
)

func GetUserIDFromContext(ctx context.Context) (uint, bool) {
	return utils.GetUserIDFromContext(ctx)
}
