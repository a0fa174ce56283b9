package handler

import (
	"Noted/models"
	"Noted/pkg/context"
	"Noted/pkg/hashid"
	"Noted/pkg/log"
	"Noted/pkg/response"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestOrderedIDs(t *testing.T) {
	ids, err := hashid.New("test")
	require.NoError(t, err)

	body := `{"orderedCategories":[{"id":"` + ids.Encode(7) + `"},{"id":"nope"},{},"plain",{"id":"` + ids.Encode(3) + `"}]}`
	got := orderedIDs(ids, gjson.Get(body, "orderedCategories"))

	assert.Equal(t, []uint64{7, 0, 0, 0, 3}, got)
}

func TestFailure(t *testing.T) {
	err := failure(errors.New("db gone"), "Error adding note")
	var be *response.BizError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, http.StatusInternalServerError, be.Code)
	assert.Equal(t, "Error adding note", be.Msg)

	err = failure(models.Validate(&models.Category{ID: 1}), "Error adding category")
	require.ErrorAs(t, err, &be)
	assert.Equal(t, http.StatusBadRequest, be.Code)
	assert.Contains(t, be.Msg, "Name")
}

func TestLogAction_CarriesUser(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	prev := log.L
	log.L = zap.New(core)
	t.Cleanup(func() { log.L = prev })

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Set(context.CtxUserID, uint64(42))
	c.Set(context.CtxUsername, "admin")

	logAction(c, "note deleted", zap.Uint64("note_id", 7))

	entries := logs.FilterMessage("note deleted").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, uint64(42), fields["user_id"])
	assert.Equal(t, "admin", fields["username"])
	assert.Equal(t, uint64(7), fields["note_id"])
}
