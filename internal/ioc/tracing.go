package ioc

import (
	"github.com/gotomicro/ego/core/econf"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/zipkin"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
)

func InitZipkinTracer() *trace.TracerProvider {
	type Config struct {
		Endpoint    string  `yaml:"endpoint"`
		ServiceName string  `yaml:"serviceName"`
		SampleRatio float64 `yaml:"sampleRatio"`
	}
	cfg := Config{
		Endpoint:    "http://localhost:9411/api/v2/spans",
		ServiceName: "notice-delivery",
		SampleRatio: 1,
	}
	if err := econf.UnmarshalKey("trace.zipkin", &cfg); err != nil {
		panic(err)
	}
	exporter, err := zipkin.New(cfg.Endpoint)
	if err != nil {
		panic(err)
	}
	res := resource.NewSchemaless(attribute.String("service.name", cfg.ServiceName))
	tp := trace.NewTracerProvider(
		trace.WithBatcher(exporter),
		trace.WithResource(res),
		trace.WithSampler(trace.ParentBased(trace.TraceIDRatioBased(cfg.SampleRatio))),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{}, propagation.Baggage{},
	))
	return tp
}
