package handler

import (
	"Noted/models"
	"Noted/pkg/context"
	"Noted/pkg/hashid"
	"Noted/pkg/log"
	"Noted/pkg/response"
	"Noted/types"
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

// failure reports validation errors as 400 and logs anything else
// before answering 500 with msg.
func failure(err error, msg string) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return response.BadRequest(verrs.Error())
	}
	log.L.Error(msg, zap.Error(err))
	return response.Internal(msg)
}

// logAction records a write made by the logged in user.
func logAction(c *gin.Context, msg string, fields ...zap.Field) {
	uid, _ := context.GetUserID(c)
	fields = append(fields, zap.Uint64("user_id", uid), zap.String("username", context.GetUsername(c)))
	log.L.Info(msg, fields...)
}

// orderedIDs decodes the id of every element of a reorder array. An
// element without a usable id becomes 0 and keeps its position.
func orderedIDs(ids *hashid.Codec, arr gjson.Result) []uint64 {
	out := make([]uint64, 0, len(arr.Array()))
	arr.ForEach(func(_, item gjson.Result) bool {
		id, err := ids.Decode(item.Get("id").String())
		if err != nil {
			id = 0
		}
		out = append(out, id)
		return true
	})
	return out
}

func toCategoryItem(ids *hashid.Codec, m *models.Category) types.CategoryItem {
	return types.CategoryItem{
		ID:    ids.Encode(m.ID),
		Name:  m.Name,
		Order: m.Order,
	}
}

func toNoteItem(ids *hashid.Codec, m *models.Note) types.NoteItem {
	return types.NoteItem{
		ID:         ids.Encode(m.ID),
		CategoryID: ids.Encode(m.CategoryID),
		Title:      m.Title,
		Content:    m.Content,
		Order:      m.Order,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}
