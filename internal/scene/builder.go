// Package scene turns simulation snapshots into render data: one model
// matrix per visible entity plus the camera view and projection. It does
// no I/O; renderers consume the returned Frame.
package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/boat-runner/internal/config"
	"github.com/vovakirdan/boat-runner/internal/sim"
)

// Kind identifies what an entity transform draws.
type Kind int

const (
	KindSea Kind = iota
	KindRock
	KindBoat
	KindSign
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindSea:
		return "sea"
	case KindRock:
		return "rock"
	case KindBoat:
		return "boat"
	case KindSign:
		return "sign"
	default:
		return "unknown"
	}
}

// EntityTransform is the model matrix of one visible entity.
// Lane is the rock lane index, -1 for everything else.
type EntityTransform struct {
	Kind  Kind
	Lane  int
	Model mgl32.Mat4
}

// Camera is the eye placement behind the view matrix.
type Camera struct {
	Eye    mgl32.Vec3
	Target mgl32.Vec3
	Up     mgl32.Vec3
}

// Frame is everything a renderer needs for one frame.
type Frame struct {
	State    sim.GameState
	Entities []EntityTransform
	Camera   Camera
	View     mgl32.Mat4
	Proj     mgl32.Mat4
}

// ViewProj returns Proj * View.
func (f Frame) ViewProj() mgl32.Mat4 {
	return f.Proj.Mul4(f.View)
}

// Builder builds frames for one game configuration.
type Builder struct {
	cfg config.BoatRunnerConfig
}

// NewBuilder creates a builder.
func NewBuilder(cfg config.BoatRunnerConfig) *Builder {
	return &Builder{cfg: cfg}
}

// Build computes the frame for a snapshot. aspect is width over height of
// the viewport; non-positive values fall back to 1.
//
// While running the camera follows the track from the game eye. Before the
// first start and after a crash it frames the sign instead, and the sign
// entity is included.
func (b *Builder) Build(snap sim.Snapshot, aspect float32) Frame {
	f := Frame{
		State:    snap.State,
		Entities: make([]EntityTransform, 0, len(snap.Rocks)+3),
	}

	sea := snap.Sea
	f.Entities = append(f.Entities, EntityTransform{
		Kind:  KindSea,
		Lane:  -1,
		Model: Model(pos(sea.LateralPosition, sea.VerticalPosition, sea.LongitudinalOffset), 0, vec(b.cfg.Sea.Scale)),
	})

	for i, rock := range snap.Rocks {
		f.Entities = append(f.Entities, EntityTransform{
			Kind:  KindRock,
			Lane:  i,
			Model: Model(pos(rock.LateralPosition, rock.VerticalPosition, rock.LongitudinalOffset), float32(rock.YawDegrees), vec(b.cfg.Rocks.Scale)),
		})
	}

	f.Entities = append(f.Entities, EntityTransform{
		Kind:  KindBoat,
		Lane:  -1,
		Model: BankedModel(pos(snap.Boat.LateralPosition, 0, snap.Boat.Z), float32(snap.Boat.BankRotationDegrees), vec(b.cfg.Boat.Scale)),
	})

	cam := b.cfg.Camera
	if snap.State == sim.Running {
		f.Camera = Camera{Eye: vec(cam.GameEye), Target: vec(cam.GameTarget), Up: mgl32.Vec3{0, 1, 0}}
	} else {
		f.Camera = Camera{Eye: vec(cam.MenuEye), Target: vec(cam.SignAt), Up: mgl32.Vec3{0, 1, 0}}
		f.Entities = append(f.Entities, EntityTransform{
			Kind:  KindSign,
			Lane:  -1,
			Model: Model(vec(cam.SignAt), 0, vec(cam.SignScale)),
		})
	}

	f.View = mgl32.LookAtV(f.Camera.Eye, f.Camera.Target, f.Camera.Up)
	f.Proj = b.Projection(aspect)
	return f
}

// Projection returns the perspective matrix. With FlipY the Y scale is
// negated so clip-space Y points down.
func (b *Builder) Projection(aspect float32) mgl32.Mat4 {
	if aspect <= 0 {
		aspect = 1
	}
	cam := b.cfg.Camera
	proj := mgl32.Perspective(mgl32.DegToRad(float32(cam.FOVDegrees)), aspect, float32(cam.Near), float32(cam.Far))
	if cam.FlipY {
		proj[5] *= -1
	}
	return proj
}

// Model composes translate, then rotate around Y by yaw, then scale.
func Model(at mgl32.Vec3, yawDegrees float32, scale mgl32.Vec3) mgl32.Mat4 {
	return mgl32.Translate3D(at.X(), at.Y(), at.Z()).
		Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(yawDegrees))).
		Mul4(mgl32.Scale3D(scale.X(), scale.Y(), scale.Z()))
}

// BankedModel is Model with the rotation around the forward (Z) axis,
// used for the boat's bank.
func BankedModel(at mgl32.Vec3, bankDegrees float32, scale mgl32.Vec3) mgl32.Mat4 {
	return mgl32.Translate3D(at.X(), at.Y(), at.Z()).
		Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(bankDegrees))).
		Mul4(mgl32.Scale3D(scale.X(), scale.Y(), scale.Z()))
}

// Project maps a local-space point through mvp to normalized device
// coordinates. ok is false for points behind the eye.
func Project(mvp mgl32.Mat4, local mgl32.Vec3) (ndc mgl32.Vec3, ok bool) {
	clip := mvp.Mul4x1(local.Vec4(1))
	w := clip.W()
	if w <= 1e-6 {
		return mgl32.Vec3{}, false
	}
	return clip.Vec3().Mul(1 / w), true
}

func pos(x, y, z float64) mgl32.Vec3 {
	return mgl32.Vec3{float32(x), float32(y), float32(z)}
}

func vec(v config.Vec3) mgl32.Vec3 {
	return pos(v[0], v[1], v[2])
}
