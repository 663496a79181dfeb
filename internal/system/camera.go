// internal/system/camera.go
package system

import (
	"math"

	"go-space-arcade/internal/component"
	"go-space-arcade/internal/config"
	"go-space-arcade/internal/utils"
	"go-space-arcade/pkg/physics"
)

// CameraSystem ведёт камеру за кораблём.
type CameraSystem struct {
	camera *component.Camera
	rng    *utils.PRNGService
}

func NewCameraSystem(camera *component.Camera, rng *utils.PRNGService) *CameraSystem {
	return &CameraSystem{camera: camera, rng: rng}
}

func (s *CameraSystem) Camera() *component.Camera { return s.camera }

// Update сдвигает камеру к цели, пересчитывает тряску и зум по скорости цели.
func (s *CameraSystem) Update(target, velocity physics.Vec2, deltaTime float64) {
	c := s.camera
	c.Position = c.Position.Add(target.Sub(c.Position).Scale(config.CameraSmoothness * physics.Frames(deltaTime)))

	speed := velocity.Length()
	intensity := math.Min(config.CameraShakeMax, speed*config.CameraShakeFactor)
	c.ShakeTimer += deltaTime
	if intensity > 0 {
		if c.ShakeTimer > config.CameraShakePeriod {
			c.Shake = physics.V(
				(s.rng.Float64()-0.5)*intensity,
				(s.rng.Float64()-0.5)*intensity,
			)
			c.ShakeTimer = 0
		}
	} else {
		c.Shake = physics.Vec2{}
	}

	c.Zoom = 1 - math.Min(config.CameraZoomMaxDelta, speed*config.CameraZoomFactor)
}

// Snap ставит камеру прямо на цель, без сглаживания.
func (s *CameraSystem) Snap(target physics.Vec2) {
	s.camera.Position = target
	s.camera.Shake = physics.Vec2{}
}
