package entity

import (
	"fmt"
	"strconv"
)

// NotificationMessage is the composed payload handed to the push transport.
// Data values are coerced to strings before they reach the wire; FCM only
// accepts a flat string map.
type NotificationMessage struct {
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Data  map[string]string `json:"data,omitempty"`
}

// CoerceData converts a loosely typed data payload into the flat string map
// the transport requires. Keys with empty names are dropped rather than
// passed through.
func CoerceData(raw map[string]any) map[string]string {
	if len(raw) == 0 {
		return nil
	}

	data := make(map[string]string, len(raw))
	for key, value := range raw {
		if key == "" {
			continue
		}

		switch v := value.(type) {
		case string:
			data[key] = v
		case bool:
			data[key] = strconv.FormatBool(v)
		case int:
			data[key] = strconv.Itoa(v)
		case int64:
			data[key] = strconv.FormatInt(v, 10)
		case float64:
			// JSON numbers decode as float64; render integers without a
			// trailing fraction.
			if v == float64(int64(v)) {
				data[key] = strconv.FormatInt(int64(v), 10)
			} else {
				data[key] = strconv.FormatFloat(v, 'f', -1, 64)
			}
		default:
			data[key] = fmt.Sprintf("%v", v)
		}
	}

	return data
}
