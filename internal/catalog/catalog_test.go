package catalog

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/ogd-file-api/internal/models"
)

type ObserverMock struct{ mock.Mock }

func (m *ObserverMock) InvalidDataset(gameID string) {
	m.Called(gameID)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

var fallback = models.IndexConfig{
	FilesBase:     "https://fallback.example.org/",
	TemplatesBase: "https://github.com/fallback/templates",
}

const fileList = `{
  "CONFIG": {
    "files_base": "https://opengamedata.fielddaylab.wisc.edu/",
    "templates_base": "https://github.com/opengamedata/opengamedata-templates/tree/"
  },
  "WAVES": {
    "WAVES_20240301_to_20240331": {"sessions": 5}
  },
  "AQUALAB": {
    "AQUALAB_20240601_to_20240831": {
      "date_modified": "09/02/2024",
      "ogd_revision": "1a2b3c4",
      "sessions": 30,
      "players": 12,
      "raw_file": "data/AQUALAB/AQUALAB_20240601_to_20240831_1a2b3c4_events.zip",
      "sessions_file": "data/AQUALAB/AQUALAB_20240601_to_20240831_1a2b3c4_session-features.zip",
      "players_file": null,
      "sessions_template": "aqualab/sessions"
    },
    "AQUALAB_20240101_to_20240131": {"sessions": "10"},
    "AQUALAB_broken": {"sessions": 99},
    "AQUALAB_20240301_to_20240331": {"sessions": 20.0, "players": "many"}
  },
  "LAKELAND": "not an object"
}`

func TestParse_KeepsIndexOrdering(t *testing.T) {
	obs := new(ObserverMock)
	obs.On("InvalidDataset", "AQUALAB").Once()

	c, err := New(newNoopLogger(), fallback, obs).Parse([]byte(fileList))
	require.NoError(t, err)

	assert.Equal(t, []string{"WAVES", "AQUALAB"}, c.GameIDs())

	game, ok := c.Game("AQUALAB")
	require.True(t, ok)
	require.Len(t, game.Datasets, 4)
	assert.Equal(t, "AQUALAB_20240601_to_20240831", game.Datasets[0].ID)
	assert.Equal(t, "AQUALAB_20240101_to_20240131", game.Datasets[1].ID)
	assert.Equal(t, "AQUALAB_broken", game.Datasets[2].ID)
	assert.Equal(t, "AQUALAB_20240301_to_20240331", game.Datasets[3].ID)

	obs.AssertExpectations(t)
}

func TestParse_DatasetFields(t *testing.T) {
	c, err := New(newNoopLogger(), fallback, nil).Parse([]byte(fileList))
	require.NoError(t, err)

	game, _ := c.Game("AQUALAB")
	d := game.Datasets[0]

	assert.Equal(t, models.NewDateRangeKey(2024, 6, 2024, 8), d.Key)
	assert.Equal(t, time.Date(2024, 9, 2, 0, 0, 0, 0, time.UTC), d.DateModified)
	assert.Equal(t, "1a2b3c4", d.RevisionTag)
	require.NotNil(t, d.SessionCount)
	assert.Equal(t, 30, *d.SessionCount)
	require.NotNil(t, d.PlayerCount)
	assert.Equal(t, 12, *d.PlayerCount)
	assert.Equal(t, "data/AQUALAB/AQUALAB_20240601_to_20240831_1a2b3c4_events.zip", d.Files.Raw)
	assert.Equal(t, "", d.Files.Players)
	assert.Equal(t, "", d.Files.Population)
	assert.Equal(t, "aqualab/sessions", d.Templates.Sessions)

	// Отсутствующие поля не подменяются догадками.
	sparse := game.Datasets[1]
	require.NotNil(t, sparse.SessionCount)
	assert.Equal(t, 10, *sparse.SessionCount)
	assert.Nil(t, sparse.PlayerCount)
	assert.False(t, sparse.DateModifiedKnown())
	assert.Equal(t, models.Unknown, sparse.RevisionTag)

	broken := game.Datasets[2]
	assert.False(t, broken.Key.IsValid())
	require.NotNil(t, broken.SessionCount)

	unparsable := game.Datasets[3]
	require.NotNil(t, unparsable.SessionCount)
	assert.Equal(t, 20, *unparsable.SessionCount)
	assert.Nil(t, unparsable.PlayerCount)
}

func TestParse_Config(t *testing.T) {
	tests := []struct {
		name          string
		doc           string
		wantFiles     string
		wantTemplates string
	}{
		{
			name:          "remote_url wins over files_base",
			doc:           `{"CONFIG": {"remote_url": "https://remote/", "files_base": "https://files/", "templates_url": "https://tpl/"}}`,
			wantFiles:     "https://remote/",
			wantTemplates: "https://tpl/",
		},
		{
			name:          "files_base used when remote_url missing",
			doc:           `{"CONFIG": {"files_base": "https://files/", "templates_base": "https://tplbase/"}}`,
			wantFiles:     "https://files/",
			wantTemplates: "https://tplbase/",
		},
		{
			name:          "fallback when CONFIG is empty",
			doc:           `{"CONFIG": {}}`,
			wantFiles:     fallback.FilesBase,
			wantTemplates: fallback.TemplatesBase,
		},
		{
			name:          "fallback when CONFIG is missing",
			doc:           `{}`,
			wantFiles:     fallback.FilesBase,
			wantTemplates: fallback.TemplatesBase,
		},
		{
			name:          "fallback when CONFIG is not an object",
			doc:           `{"CONFIG": 42}`,
			wantFiles:     fallback.FilesBase,
			wantTemplates: fallback.TemplatesBase,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(newNoopLogger(), fallback, nil).Parse([]byte(tt.doc))
			require.NoError(t, err)
			assert.Equal(t, tt.wantFiles, c.Config.FilesBase)
			assert.Equal(t, tt.wantTemplates, c.Config.TemplatesBase)
			assert.Equal(t, 0, c.Len())
		})
	}
}

func TestParse_NotAnObject(t *testing.T) {
	for _, doc := range []string{`[]`, `"file list"`, `{broken`} {
		c, err := New(newNoopLogger(), fallback, nil).Parse([]byte(doc))
		assert.Error(t, err, doc)
		assert.Nil(t, c)
	}
}

func TestParse_ExplicitDatesOverrideID(t *testing.T) {
	doc := `{
  "AQUALAB": {
    "release-1": {"start_date": "01/05/2023", "end_date": "2023-03-31"},
    "release-2": {"start_date": "garbage", "end_date": "2023-03-31"},
    "AQUALAB_20230101_to_20230131": {"start_date": "02/01/2023"}
  }
}`
	c, err := New(newNoopLogger(), fallback, nil).Parse([]byte(doc))
	require.NoError(t, err)

	game, _ := c.Game("AQUALAB")
	require.Len(t, game.Datasets, 3)
	assert.Equal(t, models.NewDateRangeKey(2023, 1, 2023, 3), game.Datasets[0].Key)
	assert.False(t, game.Datasets[1].Key.IsValid())
	// Без пары дат ключ берётся из идентификатора.
	assert.Equal(t, models.NewDateRangeKey(2023, 1, 2023, 1), game.Datasets[2].Key)
}

func TestKeyFromID(t *testing.T) {
	tests := []struct {
		name      string
		gameID    string
		datasetID string
		want      models.DateRangeKey
	}{
		{
			name:      "plain game id",
			gameID:    "AQUALAB",
			datasetID: "AQUALAB_20240101_to_20240131",
			want:      models.NewDateRangeKey(2024, 1, 2024, 1),
		},
		{
			name:      "game id with underscore",
			gameID:    "SHADOWSPECT_ASSESS",
			datasetID: "SHADOWSPECT_ASSESS_20231101_to_20240229",
			want:      models.NewDateRangeKey(2023, 11, 2024, 2),
		},
		{
			name:      "too few parts",
			gameID:    "AQUALAB",
			datasetID: "AQUALAB_20240101",
			want:      models.InvalidDateRangeKey(),
		},
		{
			name:      "too many parts",
			gameID:    "AQUALAB",
			datasetID: "AQUALAB_20240101_to_20240131_v2",
			want:      models.InvalidDateRangeKey(),
		},
		{
			name:      "non numeric date",
			gameID:    "AQUALAB",
			datasetID: "AQUALAB_2024Jan01_to_20240131",
			want:      models.InvalidDateRangeKey(),
		},
		{
			name:      "impossible month",
			gameID:    "AQUALAB",
			datasetID: "AQUALAB_20241301_to_20241331",
			want:      models.InvalidDateRangeKey(),
		},
		{
			name:      "day past end of month",
			gameID:    "AQUALAB",
			datasetID: "AQUALAB_20240601_to_20240631",
			want:      models.NewDateRangeKey(2024, 6, 2024, 6),
		},
		{
			name:      "february 30",
			gameID:    "AQUALAB",
			datasetID: "AQUALAB_20240201_to_20240230",
			want:      models.NewDateRangeKey(2024, 2, 2024, 2),
		},
		{
			name:      "day 00",
			gameID:    "AQUALAB",
			datasetID: "AQUALAB_20240600_to_20240630",
			want:      models.NewDateRangeKey(2024, 6, 2024, 6),
		},
		{
			name:      "sign in digits",
			gameID:    "AQUALAB",
			datasetID: "AQUALAB_+2024601_to_20240630",
			want:      models.InvalidDateRangeKey(),
		},
		{
			name:      "month 00",
			gameID:    "AQUALAB",
			datasetID: "AQUALAB_20240001_to_20240630",
			want:      models.InvalidDateRangeKey(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KeyFromID(tt.gameID, tt.datasetID))
		})
	}
}
