package models

// IndexConfig базовые адреса из секции CONFIG индекса.
type IndexConfig struct {
	FilesBase     string
	TemplatesBase string
}

// FileURL склеивает базовый адрес файлов с относительным путём.
// Для пустого пути возвращает nil, чтобы в JSON получился null.
func (c IndexConfig) FileURL(path string) *string {
	return joinURL(c.FilesBase, path)
}

// TemplateURL то же, что FileURL, но для шаблонов.
func (c IndexConfig) TemplateURL(path string) *string {
	return joinURL(c.TemplatesBase, path)
}

func joinURL(base, path string) *string {
	if path == "" {
		return nil
	}
	u := base + path
	return &u
}

// GameDatasets датасеты одной игры в порядке следования в индексе.
type GameDatasets struct {
	GameID   string
	Datasets []*Dataset
}

// ValidDatasets возвращает только датасеты с валидным ключом.
func (g *GameDatasets) ValidDatasets() []*Dataset {
	res := make([]*Dataset, 0, len(g.Datasets))
	for _, d := range g.Datasets {
		if d.Key.IsValid() {
			res = append(res, d)
		}
	}
	return res
}

// Catalog весь индекс: игры в порядке индекса и базовые адреса.
type Catalog struct {
	Config IndexConfig
	games  []*GameDatasets
	byID   map[string]*GameDatasets
}

// NewCatalog создаёт пустой каталог.
func NewCatalog(cfg IndexConfig) *Catalog {
	return &Catalog{
		Config: cfg,
		byID:   make(map[string]*GameDatasets),
	}
}

// AddGame добавляет игру. Повторный идентификатор заменяет набор, сохраняя позицию.
func (c *Catalog) AddGame(g *GameDatasets) {
	if existing, ok := c.byID[g.GameID]; ok {
		*existing = *g
		return
	}
	c.games = append(c.games, g)
	c.byID[g.GameID] = g
}

// Game ищет игру по идентификатору.
func (c *Catalog) Game(gameID string) (*GameDatasets, bool) {
	g, ok := c.byID[gameID]
	return g, ok
}

// GameIDs идентификаторы игр в порядке индекса.
func (c *Catalog) GameIDs() []string {
	ids := make([]string, 0, len(c.games))
	for _, g := range c.games {
		ids = append(ids, g.GameID)
	}
	return ids
}

// Len количество игр.
func (c *Catalog) Len() int {
	return len(c.games)
}
