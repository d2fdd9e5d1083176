package main

import (
	"encoding/json"
	"flag"
	"io/ioutil"
	"os"
	osuser "os/user"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/golang/glog"
	hmm "github.com/sjs2109/hmm"
	"gopkg.in/alecthomas/kingpin.v2"
)

const (
	appName    = "viterbi"
	appVersion = "0.1"
)

var (
	app         = kingpin.New(appName, "Discrete HMM Viterbi decoding command-line tool.")
	logToStderr = app.Flag("log-stderr", "Logs are written to standard error instead of files.").Default("true").Bool()
	vLevel      = app.Flag("log-level", "Enable V-leveled logging at the specified level.").Default("0").Short('v').String()
	logDir      *string

	decode      = app.Command("decode", "Searches the most probable state sequence given the model.")
	configFile  = decode.Flag("config-file", "Run configuration file.").Short('c').Default("config.yaml").String()
	modelFile   = decode.Flag("model-file", "Model descriptor file.").Short('m').String()
	dataFile    = decode.Flag("data-file", "Observation trace file.").Short('d').String()
	resultsFile = decode.Flag("results-file", "Results file. Writes to stdout when missing.").Short('r').String()
)

var props *Properties

// Properties of the viterbi tool.
type Properties struct {
	Workspace string `toml:"workspace_dir"`
	LogDir    string `toml:"log_dir"`
}

func init() {
	currDir, e1 := os.Getwd()
	hmm.Fatal(e1)
	propPath := currDir
	u, e2 := osuser.Current()
	if e2 == nil {
		propPath = filepath.Join(u.HomeDir, ".config", appName)
	}
	propPath = filepath.Join(propPath, "properties.toml")
	propEnvVar := os.Getenv("VITERBI_PROPERTIES")
	if len(propEnvVar) > 0 {
		propPath = propEnvVar
	}

	props = new(Properties)
	dat, e3 := ioutil.ReadFile(propPath)
	if e3 == nil {
		_, e4 := toml.Decode(string(dat), props)
		hmm.Fatal(e4)
	} else {
		glog.V(2).Infof("unable to read properties file - %s", e3)
	}
	defaultLogDir := filepath.Join(currDir, "log")
	if len(props.LogDir) > 0 {
		defaultLogDir = props.LogDir
	}
	logDir = app.Flag("log", "Log output dir.").Default(defaultLogDir).String()
}

func main() {
	app.Version(appVersion)
	cmd := kingpin.MustParse(app.Parse(os.Args[1:]))
	initGlog()
	defer glog.Flush()
	checkDir(props.Workspace)
	switch cmd {

	case decode.FullCommand():
		glog.V(3).Info("start decode command")
		doDecode()

	default:
		app.Usage(os.Args[1:])
	}
}

func doDecode() {

	config, e := hmm.ReadConfig(*configFile)
	if e != nil {
		glog.V(2).Infof("no config file, using flags only - %s", e)
		config = &hmm.Config{}
	}

	// Command flags overwrite config file params.
	stringParam(*modelFile, &config.ModelFile)
	stringParam(*dataFile, &config.DataFile)
	stringParam(*resultsFile, &config.ResultsFile)

	if len(config.ModelFile) == 0 {
		glog.Fatal("missing model file")
	}
	if len(config.DataFile) == 0 {
		glog.Fatal("missing data file")
	}

	d, e := hmm.ReadDescriptor(config.ModelFile)
	hmm.Fatal(e)
	m, e := hmm.NewModel(d)
	hmm.Fatal(e)

	trace, e := hmm.ReadTrace(config.DataFile)
	hmm.Fatal(e)
	data, e := hmm.NewExperimentData(m, trace)
	hmm.Fatal(e)

	result := hmm.Result{
		BatchID: config.BatchID,
		Ref:     data.RefNames(m),
		Hyp:     m.DecodeNames(data),
	}

	if len(config.ResultsFile) > 0 {
		hmm.Fatal(hmm.WriteJSONFile(config.ResultsFile, result))
		return
	}
	glog.Info("no results file specified, writing to stdout")
	hmm.Fatal(json.NewEncoder(os.Stdout).Encode(result))
}

// Overwrites dst when the flag was set.
func stringParam(v string, dst *string) {
	if len(v) > 0 {
		*dst = v
	}
}

// Creates dir if it doesn't exist.
func checkDir(path string) {

	if len(path) == 0 {
		return
	}
	e := os.MkdirAll(path, 0755)
	if e != nil {
		glog.Fatal(e)
	}
}

func initGlog() {

	checkDir(*logDir)
	if *logToStderr {
		flag.Set("alsologtostderr", "true")
	}
	flag.Set("v", *vLevel)
	flag.Set("log_dir", *logDir)
}
