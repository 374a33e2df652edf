package interfaces

// KeyValueStore persists opaque blobs under string keys. Get reports
// found=false, not an error, for keys never written.
type KeyValueStore interface {
	Get(key string) (data []byte, found bool, err error)
	Set(key string, data []byte) error
}
