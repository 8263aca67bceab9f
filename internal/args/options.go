package args

// CallbackOption is called by the parser with the option value instead of setting a field
type CallbackOption func(string) error

// General options are shared by all the commands. Logs always go to stderr (or the log file), as
// stdout may carry the converted data.
var General struct {
	Verbose               []bool         `short:"v" long:"verbose"            env:"B64STREAM_VERBOSITY"          description:"Show verbose debug information. Repeat for more detail, e.g. -vvvvvv for trace." yaml:"verbose"`
	ConfigurationFile     CallbackOption `short:"c" long:"config"             env:"B64STREAM_CONFIG"             description:"Configuration file (yaml-formatted)" no-ini:"true" yaml:"-"`
	ConfigurationFilePath string         `yaml:"-"`
	LogFile               *string        `short:"l" long:"log-file"           env:"B64STREAM_LOG_FILE"           description:"Log file (file will be appended). If not set, logs go to stderr." default:"-" yaml:"log-file"`
	LogFormat             string         `short:"f" long:"log-format"         env:"B64STREAM_LOG_FORMAT"         description:"Log format (json or text)." choice:"text" choice:"json" default:"text" yaml:"log-format"`
	LogColor              string         `short:"C" long:"log-color"          env:"B64STREAM_LOG_COLOR"          description:"Color the log output: yes, no or auto" choice:"yes" choice:"no" choice:"true" choice:"false" choice:"auto" default:"auto" yaml:"log-color"`
	LogFullTimestamp      bool           `          long:"log-full-timestamp" env:"B64STREAM_LOG_FULL_TIMESTAMP" description:"Display full timestamp in logs." yaml:"log-full-timestamp"`
	LogReportCaller       bool           `          long:"log-report-caller"  env:"B64STREAM_LOG_REPORT_CALLER"  description:"Add the calling file, line and method to every log entry." yaml:"log-report-caller"`
	Stats                 bool           `short:"s" long:"stats"              env:"B64STREAM_STATS"              description:"Log the chunk and byte counts and the xxhash64 of the raw data when a conversion is done." yaml:"stats"`
}

