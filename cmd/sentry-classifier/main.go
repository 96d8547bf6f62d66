package main

import (
	v1 "NetSentry/api/gen/v1"
	"NetSentry/internal/classifier"
	"NetSentry/internal/config"
	"NetSentry/internal/engine/features"
	"NetSentry/internal/model"
	"context"
	"flag"
	"fmt"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"

	"google.golang.org/grpc"
)

// server wraps a scorer behind the classifier service contract.
type server struct {
	v1.UnimplementedClassifierServiceServer
	scorer model.Scorer
}

// Classify scores one feature vector.
func (s *server) Classify(_ context.Context, req *v1.ClassifyRequest) (*v1.ClassifyResponse, error) {
	if len(req.GetFeatures()) != features.FeatureCount {
		return nil, fmt.Errorf("expected %d features, got %d", features.FeatureCount, len(req.GetFeatures()))
	}
	result := s.scorer.Score(req.GetFeatures())
	return &v1.ClassifyResponse{Label: result.Label, Confidence: result.Confidence}, nil
}

func main() {
	configFile := flag.String("config", "configs/config.yaml", "Path to the configuration file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	lis, err := net.Listen("tcp", cfg.ClassifierService.GRPCListenAddr)
	if err != nil {
		log.Fatalf("Failed to listen: %v", err)
	}

	s := grpc.NewServer()
	v1.RegisterClassifierServiceServer(s, &server{scorer: classifier.Heuristic{}})

	go func() {
		log.Printf("Classifier service starting on %s", cfg.ClassifierService.GRPCListenAddr)
		if err := s.Serve(lis); err != nil {
			log.Fatalf("Failed to serve gRPC: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Classifier service shutting down...")

	s.GracefulStop()
}
