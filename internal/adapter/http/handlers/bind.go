package handlers

import (
	"encoding/json"
	"io"

	"github.com/gin-gonic/gin"
)

// bindRawJSON decodes the request body into dst and also returns the raw
// top-level JSON object, so validation can tell an absent field from an
// explicit null.
func bindRawJSON(c *gin.Context, dst any) (map[string]json.RawMessage, error) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return nil, err
	}

	raw := map[string]json.RawMessage{}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return nil, err
	}

	return raw, nil
}
