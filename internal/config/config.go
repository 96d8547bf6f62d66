package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// EngineConfig holds the flow reconstruction pipeline settings.
type EngineConfig struct {
	NumWorkers          int    `yaml:"num_workers"`
	SizeOfPacketChannel int    `yaml:"size_of_packet_channel"`
	NumShards           uint32 `yaml:"num_shards"`
	FlowTimeout         string `yaml:"flow_timeout"`
	SweepInterval       string `yaml:"sweep_interval"`
	IdleThreshold       string `yaml:"idle_threshold"`
	BulkMinPackets      int    `yaml:"bulk_min_packets"`
	ExportWorkers       int    `yaml:"export_workers"`
}

// ClassifierConfig configures the connection to the classifier service.
type ClassifierConfig struct {
	Enabled          bool    `yaml:"enabled"`
	ServiceAddr      string  `yaml:"service_addr"`
	Timeout          string  `yaml:"timeout"`
	UnknownThreshold float64 `yaml:"unknown_threshold"`
}

// RuleWindow is a sliding-window counter definition: fire once Threshold
// events are observed within Window.
type RuleWindow struct {
	Window    string `yaml:"window"`
	Threshold int    `yaml:"threshold"`
}

// RulesConfig holds the signature rule engine settings.
type RulesConfig struct {
	BruteForce          RuleWindow `yaml:"brute_force"`
	PrivilegeEscalation RuleWindow `yaml:"privilege_escalation"`
	PortScan            RuleWindow `yaml:"port_scan"`
	SlowConn            RuleWindow `yaml:"slow_conn"`
	PayloadInspection   bool       `yaml:"payload_inspection"`
	ReclaimInterval     string     `yaml:"reclaim_interval"`
}

// DispatcherConfig holds alert dedup and history settings.
type DispatcherConfig struct {
	Cooldown          string  `yaml:"cooldown"`
	TrafficHistory    int     `yaml:"traffic_history"`
	AlertHistory      int     `yaml:"alert_history"`
	RuleConfidence    float64 `yaml:"rule_confidence"`
	PatternConfidence float64 `yaml:"pattern_confidence"`
}

// ProbeConfig holds packet capture and NATS transport settings.
type ProbeConfig struct {
	NATSURL     string `yaml:"nats_url"`
	Subject     string `yaml:"subject"`
	Interface   string `yaml:"interface"`
	BPF         string `yaml:"bpf"`
	SnapshotLen int32  `yaml:"snapshot_len"`
}

// APIConfig holds the snapshot HTTP API settings.
type APIConfig struct {
	ListenAddr string `yaml:"listen_addr"`
}

// ClickHouseConfig holds the alert storage sink settings.
type ClickHouseConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Database string `yaml:"database"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// SMTPConfig holds email delivery settings.
type SMTPConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	From     string `yaml:"from"`
	To       string `yaml:"to"`
}

// NotifyConfig controls the alert digest emailer.
type NotifyConfig struct {
	Enabled       bool   `yaml:"enabled"`
	CheckInterval string `yaml:"check_interval"`
	MinSeverity   string `yaml:"min_severity"`
}

// AIConfig configures the optional digest analysis via an
// OpenAI-compatible endpoint.
type AIConfig struct {
	Enabled bool   `yaml:"enabled"`
	APIKey  string `yaml:"api_key"`
	BaseURL string `yaml:"base_url"`
	Model   string `yaml:"model"`
}

// ClassifierServiceConfig holds the bundled classifier service settings.
type ClassifierServiceConfig struct {
	GRPCListenAddr string `yaml:"grpc_listen_addr"`
}

// Config is the top-level configuration struct for the entire application.
type Config struct {
	Engine            EngineConfig            `yaml:"engine"`
	Classifier        ClassifierConfig        `yaml:"classifier"`
	Rules             RulesConfig             `yaml:"rules"`
	Dispatcher        DispatcherConfig        `yaml:"dispatcher"`
	Probe             ProbeConfig             `yaml:"probe"`
	API               APIConfig               `yaml:"api"`
	ClickHouse        ClickHouseConfig        `yaml:"clickhouse"`
	SMTP              SMTPConfig              `yaml:"smtp"`
	Notify            NotifyConfig            `yaml:"notify"`
	AI                AIConfig                `yaml:"ai"`
	ClassifierService ClassifierServiceConfig `yaml:"classifier_service"`
}

// Default returns the configuration the engine runs with when a field is
// not set in the YAML file. The unknown threshold and cooldown are
// deployment defaults, not invariants.
func Default() *Config {
	return &Config{
		Engine: EngineConfig{
			NumWorkers:          4,
			SizeOfPacketChannel: 4096,
			NumShards:           256,
			FlowTimeout:         "2s",
			SweepInterval:       "500ms",
			IdleThreshold:       "1s",
			BulkMinPackets:      4,
			ExportWorkers:       2,
		},
		Classifier: ClassifierConfig{
			Enabled:          true,
			ServiceAddr:      "localhost:50061",
			Timeout:          "500ms",
			UnknownThreshold: 0.60,
		},
		Rules: RulesConfig{
			BruteForce:          RuleWindow{Window: "10s", Threshold: 10},
			PrivilegeEscalation: RuleWindow{Window: "30s", Threshold: 3},
			PortScan:            RuleWindow{Window: "10s", Threshold: 10},
			SlowConn:            RuleWindow{Window: "30s", Threshold: 20},
			PayloadInspection:   true,
			ReclaimInterval:     "60s",
		},
		Dispatcher: DispatcherConfig{
			Cooldown:          "30s",
			TrafficHistory:    200,
			AlertHistory:      500,
			RuleConfidence:    0.90,
			PatternConfidence: 0.95,
		},
		Probe: ProbeConfig{
			NATSURL:     "nats://localhost:4222",
			Subject:     "netsentry.packets.raw",
			SnapshotLen: 1600,
		},
		API: APIConfig{
			ListenAddr: ":8080",
		},
		ClickHouse: ClickHouseConfig{
			Host:     "localhost",
			Port:     9000,
			Database: "default",
			Username: "default",
		},
		Notify: NotifyConfig{
			CheckInterval: "60s",
			MinSeverity:   "high",
		},
		ClassifierService: ClassifierServiceConfig{
			GRPCListenAddr: ":50061",
		},
	}
}

// LoadConfig reads the configuration from a YAML file, layered over the
// defaults.
func LoadConfig(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config YAML: %w", err)
	}

	return cfg, nil
}
