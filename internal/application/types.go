package application

import "locator/internal/domain"

// Re-export resource kinds for use by adapters
type ResourceKind = domain.ResourceKind

const (
	KindUnknown     = domain.KindUnknown
	KindApplication = domain.KindApplication
	KindFile        = domain.KindFile
)

// Re-export domain types for use by adapters
type (
	Application  = domain.Application
	File         = domain.File
	Resource     = domain.Resource
	SearchResult = domain.SearchResult
)
