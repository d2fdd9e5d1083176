package hmm

import (
	"io/ioutil"

	"gopkg.in/yaml.v2"
)

// Config binds the input and output files of one decoding run. Command
// flags may overwrite individual fields.
type Config struct {
	ModelFile   string `yaml:"model_file" json:"model_file"`
	DataFile    string `yaml:"data_file" json:"data_file"`
	ResultsFile string `yaml:"results_file,omitempty" json:"results_file,omitempty"`
	BatchID     string `yaml:"batch_id,omitempty" json:"batch_id,omitempty"`
}

// ReadConfig reads a run configuration from a yaml file.
func ReadConfig(fn string) (config *Config, e error) {

	var b []byte
	b, e = ioutil.ReadFile(fn)
	if e != nil {
		return
	}
	e = yaml.Unmarshal(b, &config)
	return
}
