package hmm

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
)

func TestConfig(t *testing.T) {

	fn := filepath.Join(os.TempDir(), "config.yaml")
	t.Logf("Config File: %s.", fn)
	err := ioutil.WriteFile(fn, []byte(config), 0644)
	CheckError(t, err)

	c, e := ReadConfig(fn)
	CheckError(t, e)

	t.Logf("Config: %+v", c)

	if c.ModelFile != "model.yaml" {
		t.Fatalf("ModelFile is [%s]. Expected \"model.yaml\".", c.ModelFile)
	}
	if c.DataFile != "trace.yaml" {
		t.Fatalf("DataFile is [%s]. Expected \"trace.yaml\".", c.DataFile)
	}
	if c.ResultsFile != "results.json" {
		t.Fatalf("ResultsFile is [%s]. Expected \"results.json\".", c.ResultsFile)
	}
	if c.BatchID != "exp-12" {
		t.Fatalf("BatchID is [%s]. Expected \"exp-12\".", c.BatchID)
	}
}

const config string = `
model_file: model.yaml
data_file: trace.yaml
results_file: results.json
batch_id: exp-12
`
