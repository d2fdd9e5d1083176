package hmm

import (
	"encoding/json"
	"os"

	"github.com/golang/glog"
)

// Result pairs the reference state names from a trace with the decoded
// hypothesis.
type Result struct {
	BatchID string   `json:"batchid"`
	Ref     []string `json:"ref"`
	Hyp     []string `json:"hyp"`
}

func Fatal(err error) {
	if err != nil {
		glog.Fatal(err)
	}
}

// WriteJSONFile writes v to a file as JSON.
func WriteJSONFile(fn string, v interface{}) error {

	f, e := os.Create(fn)
	if e != nil {
		return e
	}
	defer f.Close()
	return json.NewEncoder(f).Encode(v)
}

// ReadJSONFile reads JSON from a file into v.
func ReadJSONFile(fn string, v interface{}) error {

	f, e := os.Open(fn)
	if e != nil {
		return e
	}
	defer f.Close()
	return json.NewDecoder(f).Decode(v)
}
