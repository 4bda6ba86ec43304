package metrics

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
	"github.com/lvargas/catalogos-backend/config"
	"github.com/lvargas/catalogos-backend/pkg/logger"
)

const putTimeout = 5 * time.Second

// Collector records request latency and HTTP status counts. Metrics are
// always logged locally; they are shipped to CloudWatch only when the
// environment carries AWS credentials. Shipping is asynchronous and
// best-effort: a failed put is logged and dropped, never surfaced to the
// request that produced it.
type Collector struct {
	client      *cloudwatch.Client
	namespace   string
	environment string
}

// New builds a Collector. Without credentials the CloudWatch client stays
// nil and Record* calls only log.
func New(cfg *config.CloudWatchConfig, environment string) *Collector {
	collector := &Collector{
		namespace:   cfg.Namespace,
		environment: environment,
	}

	if !cfg.HasCredentials() {
		logger.Info("No AWS credentials found in environment; CloudWatch metrics disabled")
		return collector
	}

	var awsCfg aws.Config
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		awsCfg = aws.Config{
			Region: cfg.Region,
			Credentials: credentials.NewStaticCredentialsProvider(
				cfg.AccessKeyID,
				cfg.SecretAccessKey,
				"",
			),
		}
	} else {
		// AWS_PROFILE case: default credential chain
		var err error
		awsCfg, err = awsconfig.LoadDefaultConfig(context.TODO(),
			awsconfig.WithRegion(cfg.Region),
		)
		if err != nil {
			logger.Warn("Could not initialize CloudWatch client; metrics will be logged locally only", map[string]interface{}{
				"error": err.Error(),
			})
			return collector
		}
	}

	collector.client = cloudwatch.NewFromConfig(awsCfg)
	logger.Info("CloudWatch client initialized", map[string]interface{}{
		"region":    cfg.Region,
		"namespace": cfg.Namespace,
	})
	return collector
}

// Enabled reports whether metrics are shipped to CloudWatch.
func (m *Collector) Enabled() bool {
	return m.client != nil
}

// StatusRange classifies an HTTP status code into 2xx/4xx/5xx/other.
func StatusRange(statusCode int) string {
	switch {
	case statusCode >= 200 && statusCode < 300:
		return "2xx"
	case statusCode >= 400 && statusCode < 500:
		return "4xx"
	case statusCode >= 500 && statusCode < 600:
		return "5xx"
	default:
		return "other"
	}
}

// RecordLatency records the execution time of an endpoint in milliseconds.
func (m *Collector) RecordLatency(endpoint string, latencyMs float64) {
	logger.Debug("Metric: request latency", map[string]interface{}{
		"endpoint":    endpoint,
		"latency_ms":  latencyMs,
		"environment": m.environment,
	})

	m.put("RequestLatency", latencyMs, types.StandardUnitMilliseconds, []types.Dimension{
		{Name: aws.String("Environment"), Value: aws.String(m.environment)},
		{Name: aws.String("Endpoint"), Value: aws.String(endpoint)},
	})
}

// RecordHTTPStatus records one response, bucketed by status range.
func (m *Collector) RecordHTTPStatus(endpoint string, statusCode int) {
	statusRange := StatusRange(statusCode)

	logger.Debug("Metric: HTTP status", map[string]interface{}{
		"endpoint":     endpoint,
		"status_code":  statusCode,
		"status_range": statusRange,
		"environment":  m.environment,
	})

	m.put("HTTPStatusCount", 1, types.StandardUnitCount, []types.Dimension{
		{Name: aws.String("Environment"), Value: aws.String(m.environment)},
		{Name: aws.String("Endpoint"), Value: aws.String(endpoint)},
		{Name: aws.String("StatusRange"), Value: aws.String(statusRange)},
	})
}

// RecordError records an application-level failure.
func (m *Collector) RecordError(errorType, message string) {
	logger.Error("Metric: application error", nil, map[string]interface{}{
		"error_type":  errorType,
		"message":     message,
		"environment": m.environment,
	})

	m.put("ApplicationErrors", 1, types.StandardUnitCount, []types.Dimension{
		{Name: aws.String("Environment"), Value: aws.String(m.environment)},
		{Name: aws.String("ErrorType"), Value: aws.String(errorType)},
	})
}

func (m *Collector) put(metricName string, value float64, unit types.StandardUnit, dimensions []types.Dimension) {
	if m.client == nil {
		return
	}

	datum := types.MetricDatum{
		MetricName:        aws.String(metricName),
		Dimensions:        dimensions,
		Timestamp:         aws.Time(time.Now().UTC()),
		Value:             aws.Float64(value),
		Unit:              unit,
		StorageResolution: aws.Int32(60),
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), putTimeout)
		defer cancel()

		_, err := m.client.PutMetricData(ctx, &cloudwatch.PutMetricDataInput{
			Namespace:  aws.String(m.namespace),
			MetricData: []types.MetricDatum{datum},
		})
		if err != nil {
			logger.Warn("Failed to send metric to CloudWatch", map[string]interface{}{
				"metric": metricName,
				"error":  err.Error(),
			})
		}
	}()
}
