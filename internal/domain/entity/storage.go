package entity

// StorageArea names one of the two key-value areas.
type StorageArea string

const (
	StorageLocal StorageArea = "local"
	StorageSync  StorageArea = "sync"
)

// Storage keys.
const (
	KeyMenuItems   = "menuItems"
	KeyLastVersion = "lastVersion"
)

// StorageChange describes a write observed on a storage area.
// OldValue and NewValue are nil when the key was absent.
type StorageChange struct {
	Key      string
	OldValue []byte
	NewValue []byte
	Area     StorageArea
}

// Removed reports whether the change deleted the key.
func (c StorageChange) Removed() bool {
	return c.NewValue == nil
}
