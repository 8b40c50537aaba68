package inline

import (
	"encoding/json"

	"github.com/gtv-cli/gtv/listing"
)

// Video is a listed video with its optional stream URL.
type Video struct {
	*listing.Record
	Stream string `json:"stream,omitempty"`
}

// Output is the JSON document written by inline mode.
type Output struct {
	Category string   `json:"category"`
	Offset   int      `json:"offset"`
	Query    string   `json:"query,omitempty"`
	Next     int      `json:"next,omitempty" jsonschema:"description=Offset of the following page, absent on the last page."`
	Result   []*Video `json:"result"`
}

func asJson(output *Output) ([]byte, error) {
	if output.Result == nil {
		output.Result = []*Video{}
	}
	return json.Marshal(output)
}
