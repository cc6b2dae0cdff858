package contextkeys

// Используем кастомный тип, чтобы избежать коллизий
type contextKey string

// CatalogContextKey - ключ, по которому хранится *catalog.Snapshot текущего запроса
const CatalogContextKey = contextKey("catalog")
