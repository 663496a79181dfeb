// pkg/physics/integrate.go
package physics

// ReferenceFPS: частота, под которую подобраны все коэффициенты.
// Множитель deltaTime*ReferenceFPS переводит секунды в "кадры".
const ReferenceFPS = 60.0

// Frames переводит deltaTime (секунды) в доли эталонного кадра.
func Frames(deltaTime float64) float64 {
	return deltaTime * ReferenceFPS
}

// Accelerate добавляет к скорости force*acceleration с учётом времени.
func Accelerate(velocity, force Vec2, acceleration, deltaTime float64) Vec2 {
	return velocity.Add(force.Scale(acceleration * Frames(deltaTime)))
}

// ClampSpeed равномерно масштабирует скорость, если она больше maxSpeed.
func ClampSpeed(velocity Vec2, maxSpeed float64) Vec2 {
	speed := velocity.Length()
	if speed > maxSpeed && speed > 0 {
		return velocity.Scale(maxSpeed / speed)
	}
	return velocity
}

// ApplyFriction затухание скорости; применяется один раз за тик.
func ApplyFriction(velocity Vec2, friction float64) Vec2 {
	return velocity.Scale(friction)
}

// Integrate сдвигает позицию на velocity с учётом времени.
func Integrate(position, velocity Vec2, deltaTime float64) Vec2 {
	return position.Add(velocity.Scale(Frames(deltaTime)))
}

// Steer добавляет к скорости нормализованное направление с коэффициентом gain.
// При нулевом направлении (цель совпадает с позицией) скорость не меняется.
func Steer(velocity, direction Vec2, gain, deltaTime float64) Vec2 {
	unit, _, ok := direction.Normalize()
	if !ok {
		return velocity
	}
	return velocity.Add(unit.Scale(gain * Frames(deltaTime)))
}

// Body: минимальное состояние движущегося тела.
type Body struct {
	Position Vec2
	Velocity Vec2
}

// Step выполняет порядок разгон -> ограничение -> трение -> интегрирование.
// Порядок фиксирован: от него зависят предельная скорость и инерция.
func (b *Body) Step(force Vec2, acceleration, maxSpeed, friction, deltaTime float64) {
	b.Velocity = Accelerate(b.Velocity, force, acceleration, deltaTime)
	b.Velocity = ClampSpeed(b.Velocity, maxSpeed)
	b.Velocity = ApplyFriction(b.Velocity, friction)
	b.Position = Integrate(b.Position, b.Velocity, deltaTime)
}
