// Package chamfer computes weighted distance fields over 2D and 3D
// integer grids using two-pass chamfer propagation.
//
// # Overview
//
// A chamfer mask is a small catalogue of integer offset/weight pairs
// that approximates Euclidean distance through local relaxation. The
// engine sweeps a grid twice, once in raster order and once in reverse,
// relaxing every cell against its already-visited neighbors. Three
// policies are built on the same propagator:
//
//   - Distance transforms: the distance from every foreground cell to
//     the nearest background cell.
//   - Label propagation: grow labeled regions outward (bounded dilation)
//     or tessellate the whole grid into influence zones (nearest-label
//     assignment).
//   - Geodesic propagation: distance from marker cells measured along
//     paths confined to a binary mask.
//
// # Quick Start
//
//	import "github.com/gogrid/chamfer"
//
//	// Binarize your image into a Grid2D[uint8], nonzero = foreground.
//	bin := chamfer.NewGrid2D[uint8](512, 512)
//	// ... fill bin ...
//
//	// 16-bit distance map with the Borgefors 3-4 mask, in pixel units.
//	dist, err := chamfer.DistanceTransform2D[uint16](bin, chamfer.Borgefors,
//	    chamfer.Normalize())
//
// # Encodings
//
// Distance fields are either saturating 16-bit integers (unreached
// sentinel math.MaxUint16) or 32-bit floats (sentinel +Inf). Saturation
// is not an error: distances beyond the encoding's capacity clamp to
// the sentinel. Pick float32 when headroom matters.
//
// # Masks
//
// The usual suspects are pre-built: CityBlock, Chessboard, Weights23,
// Borgefors, ChessKnight, and their 3D analogues including the
// Svensson 3-4-5-7 mask. Custom masks come from NewMask2D/NewMask3D
// or, for the command-line tool, from TOML tables via the maskfile
// subpackage. Mask identity is part of the reproducibility contract:
// the same mask and input always produce bit-identical output.
//
// # Determinism and concurrency
//
// Every call is a pure, synchronous function of its inputs. The two
// sweeps within a call are strictly sequential; independent calls are
// embarrassingly parallel (see DistanceTransformSlices for a built-in
// per-slice dispatcher).
package chamfer

// Version information
const (
	// Version is the current version of the library
	Version = "0.3.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 3

	// VersionPatch is the patch version
	VersionPatch = 0
)
