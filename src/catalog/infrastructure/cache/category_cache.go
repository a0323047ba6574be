package cache

import (
	"database/sql"
	"log"
	"sync"

	"github.com/google/uuid"
)

// Category representa una categoría de producto en el cache
type Category struct {
	ID        uuid.UUID
	Name      string
	SortOrder int
}

// CategoryCache cache en memoria de categorías activas del catálogo.
// Las categorías cambian muy poco; se cargan una vez al boot y se usan para
// denormalizar el nombre en listados sin JOIN.
type CategoryCache struct {
	categories map[uuid.UUID]Category
	mu         sync.RWMutex
}

// NewCategoryCache crea un nuevo cache de categorías
func NewCategoryCache() *CategoryCache {
	return &CategoryCache{
		categories: make(map[uuid.UUID]Category),
	}
}

// LoadFromDB carga las categorías activas desde la base de datos
func (c *CategoryCache) LoadFromDB(db *sql.DB) error {
	log.Println("🔄 Loading product categories into cache...")

	query := `
		SELECT id, name, sort_order
		FROM categories
		WHERE is_active = true
		ORDER BY sort_order
	`

	rows, err := db.Query(query)
	if err != nil {
		log.Printf("⚠️  Warning: Could not load categories: %v", err)
		log.Println("⚠️  Continuing without category cache")
		return err
	}
	defer rows.Close()

	c.mu.Lock()
	defer c.mu.Unlock()

	count := 0
	for rows.Next() {
		var cat Category
		err := rows.Scan(&cat.ID, &cat.Name, &cat.SortOrder)
		if err != nil {
			log.Printf("⚠️  Error scanning category: %v", err)
			continue
		}
		c.categories[cat.ID] = cat
		count++
	}

	log.Printf("✅ Loaded %d categories into cache", count)

	return nil
}

// Get obtiene una categoría por ID
func (c *CategoryCache) Get(id uuid.UUID) (Category, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	cat, ok := c.categories[id]
	return cat, ok
}

// GetName obtiene sólo el nombre de una categoría por ID
func (c *CategoryCache) GetName(id uuid.UUID) string {
	cat, ok := c.Get(id)
	if !ok {
		return "Unknown"
	}
	return cat.Name
}
