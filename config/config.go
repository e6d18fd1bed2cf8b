package config

import "time"

type Config struct {
	AppName                       string   `env:"APP_NAME" env-default:"supply-chain-reasoning-engine"`
	Port                          int      `env:"PORT" env-default:"3001"`
	LogLevel                      string   `env:"LOG_LEVEL" env-default:"info"`
	PrettyLogs                    bool     `env:"PRETTY_LOGS" env-default:"false"`
	HttpServerWriteTimeoutSeconds int      `env:"HTTP_SERVER_WRITE_TIMEOUT_SECONDS" env-default:"120"`
	HttpServerReadTimeoutSeconds  int      `env:"HTTP_SERVER_READ_TIMEOUT_SECONDS" env-default:"10"`
	HttpServerIdleTimeoutSeconds  int      `env:"HTTP_SERVER_IDLE_TIMEOUT_SECONDS" env-default:"10"`
	AllowOrigins                  []string `env:"HTTP_SERVER_ALLOW_ORIGINS" env-default:"*"`
	AllowMethods                  []string `env:"HTTP_SERVER_ALLOW_METHODS" env-default:"GET,POST"`

	// Azure OpenAI endpoint URL
	AzureOpenAIEndpoint string `env:"AZURE_OPENAI_ENDPOINT" env-default:""`
	// Azure OpenAI API key
	AzureOpenAIAPIKey string `env:"AZURE_OPENAI_API_KEY" env-default:""`
	// Deployment name for the chat completions model
	AzureOpenAIDeployment string `env:"AZURE_OPENAI_DEPLOYMENT" env-default:"o4-mini"`
	// Model name sent in the request body
	AzureOpenAIModel string `env:"AZURE_OPENAI_MODEL" env-default:"o4-mini"`
	// API version query parameter
	AzureOpenAIAPIVersion string `env:"AZURE_OPENAI_API_VERSION" env-default:"2024-04-01-preview"`
	// Completion token cap per reasoning request
	ReasoningMaxCompletionTokens int `env:"REASONING_MAX_COMPLETION_TOKENS" env-default:"800"`
	// Ask the provider for schema-constrained output
	ReasoningStructuredOutput bool `env:"REASONING_STRUCTURED_OUTPUT" env-default:"false"`
	// Timeout for the upstream reasoning call
	ReasoningTimeout time.Duration `env:"REASONING_TIMEOUT" env-default:"60s"`

	// Enable the Redis advice cache
	CacheEnabled bool `env:"CACHE_ENABLED" env-default:"false"`
	// TTL for cached advice
	CacheTTL time.Duration `env:"CACHE_TTL" env-default:"5m"`
	// Redis host
	RedisHost string `env:"REDIS_HOST" env-default:"localhost"`
	// Redis port
	RedisPort int `env:"REDIS_PORT" env-default:"6379"`
	// Redis password
	RedisPassword string `env:"REDIS_PASSWORD" env-default:""`
	// Redis database number
	RedisDB int `env:"REDIS_DB" env-default:"0"`

	// Enable Kafka audit event publishing
	KafkaEnabled bool `env:"KAFKA_ENABLED" env-default:"false"`
	// Kafka brokers (comma-separated)
	KafkaBrokers []string `env:"KAFKA_BROKERS" env-default:"localhost:9092"`
	// Kafka topic for supply chain audit events
	KafkaEventsTopic string `env:"KAFKA_EVENTS_TOPIC" env-default:"supplychain-events"`

	// Tracing settings
	// Enable OTLP tracing export (set to true to send traces to collector)
	OTLPEnabled bool `env:"OTLP_ENABLED" env-default:"false"`
	// OTLP collector endpoint
	OTLPEndpoint string `env:"OTLP_ENDPOINT" env-default:"localhost:4317"`
	// OTLP protocol (grpc or http)
	OTLPProtocol string `env:"OTLP_PROTOCOL" env-default:"grpc"`
	// Disable TLS for OTLP (for local development)
	OTLPInsecure bool `env:"OTLP_INSECURE" env-default:"true"`
}
