package sl_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/magabrotheeeer/ogd-file-api/internal/lib/sl"
)

func TestErr_ReturnsCorrectAttr(t *testing.T) {
	err := errors.New("something went wrong")
	attr := sl.Err(err)

	assert.Equal(t, "error", attr.Key)
	assert.Equal(t, slog.StringValue("something went wrong"), attr.Value)
}

func TestErr_NilError(t *testing.T) {
	assert.Panics(t, func() {
		_ = sl.Err(nil)
	})
}

func TestGameAndDataset(t *testing.T) {
	assert.Equal(t, slog.String("game_id", "AQUALAB"), sl.Game("AQUALAB"))
	assert.Equal(t, slog.String("dataset_id", "AQUALAB_20240101_to_20240131"), sl.Dataset("AQUALAB_20240101_to_20240131"))
}

func TestMonth(t *testing.T) {
	attr := sl.Month(2024, 6)

	assert.Equal(t, "month", attr.Key)
	assert.Equal(t, slog.KindGroup, attr.Value.Kind())
	group := attr.Value.Group()
	assert.Len(t, group, 2)
	assert.Equal(t, int64(2024), group[0].Value.Int64())
	assert.Equal(t, int64(6), group[1].Value.Int64())
}
