//go:build netsmith_noaccel

package engine

import "github.com/katalvlaran/netsmith/backend"

func defaultAccelerated() backend.Kernels { return nil }
