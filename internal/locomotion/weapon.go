package locomotion

import (
	"go.uber.org/zap"
)

// BodyWeapon is the unarmed fallback: fists and feet. Hit detection
// lives elsewhere; it only tracks whether an attack is in progress.
type BodyWeapon struct {
	attacking bool
	throwing  bool
	attacks   int

	log *zap.Logger
}

func newBodyWeapon(log *zap.Logger) *BodyWeapon {
	if log == nil {
		log = zap.NewNop()
	}
	return &BodyWeapon{log: log}
}

// BeginAttack marks an attack as started.
func (b *BodyWeapon) BeginAttack(throwing bool) {
	b.attacking = true
	b.throwing = throwing
	b.attacks++
	b.debug("body attack begin", zap.Bool("throwing", throwing), zap.Int("count", b.attacks))
}

// EndAttack marks the attack as finished.
func (b *BodyWeapon) EndAttack() {
	if !b.attacking {
		return
	}
	b.attacking = false
	b.throwing = false
	b.debug("body attack end")
}

// Attacking reports whether an attack is in progress.
func (b *BodyWeapon) Attacking() bool {
	return b.attacking
}

// Throwing reports whether the current attack is the throwing variant.
func (b *BodyWeapon) Throwing() bool {
	return b.throwing
}

// Attacks returns how many attacks have begun.
func (b *BodyWeapon) Attacks() int {
	return b.attacks
}

func (b *BodyWeapon) debug(msg string, fields ...zap.Field) {
	if b.log != nil {
		b.log.Debug(msg, fields...)
	}
}
