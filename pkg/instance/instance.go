package instance

import "os"

// GetID returns the platform-assigned instance identifier (DYNO, then
// HOSTNAME), or "local" when neither is set.
func GetID() string {
	for _, key := range []string{"DYNO", "HOSTNAME"} {
		if id := os.Getenv(key); id != "" {
			return id
		}
	}
	return "local"
}
