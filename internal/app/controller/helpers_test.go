package controller

import "fmt"

// jsonPath builds a path from an id that came back through encoding/json,
// which decodes JSON numbers as float64.
func jsonPath(prefix string, id interface{}) string {
	return fmt.Sprintf("%s%.0f", prefix, id.(float64))
}
