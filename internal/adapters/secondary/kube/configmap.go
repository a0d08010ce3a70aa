package kube

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/runtime/schema"
	"k8s.io/client-go/dynamic"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"

	"portfolio-gallery-service/internal/adapters/secondary/catalogfile"
	"portfolio-gallery-service/internal/config"
	"portfolio-gallery-service/internal/core/domain"
	ports "portfolio-gallery-service/internal/core/ports/output"
)

var configMapGVR = schema.GroupVersionResource{
	Group:    "",
	Version:  "v1",
	Resource: "configmaps",
}

type configMapSource struct {
	client    dynamic.Interface
	namespace string
	name      string
	key       string
}

// NewConfigMapSource creates a catalog source that reads a YAML catalog
// from one key of a ConfigMap.
func NewConfigMapSource(cfg *config.KubernetesConfig) (ports.CatalogSource, error) {
	var restCfg *rest.Config
	var err error

	if cfg.InCluster {
		restCfg, err = rest.InClusterConfig()
	} else if cfg.KubeConfigPath != "" {
		restCfg, err = clientcmd.BuildConfigFromFlags("", cfg.KubeConfigPath)
	} else {
		// Try default kubeconfig location
		home, _ := os.UserHomeDir()
		kubeconfig := filepath.Join(home, ".kube", "config")
		restCfg, err = clientcmd.BuildConfigFromFlags("", kubeconfig)
	}
	if err != nil {
		return nil, fmt.Errorf("build k8s config: %w", err)
	}

	client, err := dynamic.NewForConfig(restCfg)
	if err != nil {
		return nil, fmt.Errorf("create dynamic client: %w", err)
	}

	return newConfigMapSource(client, cfg), nil
}

func newConfigMapSource(client dynamic.Interface, cfg *config.KubernetesConfig) *configMapSource {
	namespace := cfg.Namespace
	if namespace == "" {
		namespace = "default"
	}
	key := cfg.Key
	if key == "" {
		key = "catalog.yaml"
	}
	return &configMapSource{
		client:    client,
		namespace: namespace,
		name:      cfg.ConfigMap,
		key:       key,
	}
}

func (s *configMapSource) Name() string {
	return "configmap"
}

func (s *configMapSource) Load(ctx context.Context) ([]*domain.Artwork, error) {
	obj, err := s.client.Resource(configMapGVR).
		Namespace(s.namespace).
		Get(ctx, s.name, metav1.GetOptions{})
	if err != nil {
		return nil, fmt.Errorf("%w: get configmap %s/%s: %v", domain.ErrSourceUnavailable, s.namespace, s.name, err)
	}

	data, found, err := unstructured.NestedString(obj.Object, "data", s.key)
	if err != nil || !found {
		return nil, fmt.Errorf("%w: configmap %s/%s has no key %q", domain.ErrSourceUnavailable, s.namespace, s.name, s.key)
	}
	return catalogfile.Parse([]byte(data))
}
