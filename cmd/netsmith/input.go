package main

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/netsmith/backend"
	"github.com/katalvlaran/netsmith/edgelist"
)

// Input holds every setting a command can read.
type Input struct {
	ConfigPath string `yaml:"-"`
	EnvFile    string `yaml:"-"`

	Path     string `yaml:"input"`
	Source   string `yaml:"source_column"`
	Target   string `yaml:"target_column"`
	Weight   string `yaml:"weight_column"`
	Directed bool   `yaml:"directed"`
	Nodes    int    `yaml:"nodes"`
	Backend  string `yaml:"backend"`
	Out      string `yaml:"out"`

	LogLevel string `yaml:"log_level"`
	LogJSON  bool   `yaml:"log_json"`

	PageRank struct {
		Damping        float64 `yaml:"damping"`
		Tolerance      float64 `yaml:"tol"`
		MaxIterations  int     `yaml:"max_iter"`
		HandleDangling bool    `yaml:"handle_dangling"`
	} `yaml:"pagerank"`

	Community struct {
		Method     string  `yaml:"method"`
		Resolution float64 `yaml:"resolution"`
		Seed       uint64  `yaml:"seed"`
	} `yaml:"community"`
}

// envPrefix namespaces the environment variables Input reads.
const envPrefix = "NETSMITH_"

// envBindings maps NETSMITH_<KEY> to the flag it overrides.
var envBindings = map[string]string{
	"INPUT":      "input",
	"SOURCE_COL": "u-col",
	"TARGET_COL": "v-col",
	"WEIGHT_COL": "w-col",
	"DIRECTED":   "directed",
	"NODES":      "nodes",
	"BACKEND":    "backend",
	"OUT":        "out",
	"LOG_LEVEL":  "log-level",
	"LOG_JSON":   "log-json",
}

// resolve layers the YAML file, the env file and NETSMITH_* variables under
// the flags the user set explicitly.
func (in *Input) resolve(flags *pflag.FlagSet) error {
	explicit := map[string]bool{}
	flags.Visit(func(f *pflag.Flag) { explicit[f.Name] = true })
	snapshot := *in

	if in.ConfigPath != "" {
		if err := in.readConfig(in.ConfigPath); err != nil {
			return err
		}
	}
	if err := loadEnvFile(in.EnvFile, explicit["env-file"]); err != nil {
		return err
	}
	for key, name := range envBindings {
		val, ok := os.LookupEnv(envPrefix + key)
		if !ok || explicit[name] {
			continue
		}
		if err := flags.Set(name, val); err != nil {
			return errors.Wrapf(err, "%s%s", envPrefix, key)
		}
	}

	// explicit flags win over the config file
	flags.Visit(func(f *pflag.Flag) {
		if explicit[f.Name] {
			restoreFlag(in, &snapshot, f.Name)
		}
	})

	return nil
}

// restoreFlag copies the flag-backed field named by flag from s into in.
func restoreFlag(in, s *Input, flag string) {
	switch flag {
	case "input":
		in.Path = s.Path
	case "u-col":
		in.Source = s.Source
	case "v-col":
		in.Target = s.Target
	case "w-col":
		in.Weight = s.Weight
	case "directed":
		in.Directed = s.Directed
	case "nodes":
		in.Nodes = s.Nodes
	case "backend":
		in.Backend = s.Backend
	case "out":
		in.Out = s.Out
	case "log-level":
		in.LogLevel = s.LogLevel
	case "log-json":
		in.LogJSON = s.LogJSON
	case "damping":
		in.PageRank.Damping = s.PageRank.Damping
	case "tol":
		in.PageRank.Tolerance = s.PageRank.Tolerance
	case "max-iter":
		in.PageRank.MaxIterations = s.PageRank.MaxIterations
	case "dangling":
		in.PageRank.HandleDangling = s.PageRank.HandleDangling
	case "method":
		in.Community.Method = s.Community.Method
	case "resolution":
		in.Community.Resolution = s.Community.Resolution
	case "seed":
		in.Community.Seed = s.Community.Seed
	}
}

func (in *Input) readConfig(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "open config")
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(in); err != nil {
		return errors.Wrapf(err, "parse config %s", path)
	}

	return nil
}

// loadEnvFile loads path into the process environment without overriding
// variables that are already set. A missing default file is not an error.
func loadEnvFile(path string, required bool) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) && !required {
			return nil
		}
		return errors.Wrap(err, "env file")
	}

	return errors.Wrapf(godotenv.Load(path), "load env file %s", path)
}

// backend parses the backend setting.
func (in *Input) backend() (backend.Backend, error) {
	return backend.Parse(in.Backend)
}

// edges loads the edge list named by the input setting.
func (in *Input) edges() (*edgelist.EdgeList, error) {
	if in.Path == "" {
		return nil, edgelist.Invalid("input", "no edge list file given (use --input)")
	}
	opts := []edgelist.Option{edgelist.WithDirected(in.Directed)}
	if in.Nodes > 0 {
		opts = append(opts, edgelist.WithNodes(in.Nodes))
	}
	cols := edgelist.Columns{Source: in.Source, Target: in.Target, Weight: in.Weight}

	return edgelist.LoadFile(in.Path, cols, opts...)
}

// formatFloat renders v compactly and round-trippably.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
