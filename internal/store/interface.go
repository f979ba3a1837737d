package store

// Store persists pipeline artifacts under slash-separated keys.
type Store interface {
	ReadText(key string) (string, error)
	WriteText(key, content string) error
	ReadJSON(key string, v interface{}) error
	WriteJSON(key string, v interface{}) error
	Exists(key string) bool
	Path(key string) string
}
