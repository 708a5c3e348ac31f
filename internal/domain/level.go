package domain

import "fmt"

// Level is a skill proficiency from 1 (Beginner) to 5 (Expert). Values read
// from storage are not range checked.
type Level int

const (
	LevelBeginner     Level = 1
	LevelNovice       Level = 2
	LevelIntermediate Level = 3
	LevelAdvanced     Level = 4
	LevelExpert       Level = 5

	MinLevel     = LevelBeginner
	MaxLevel     = LevelExpert
	DefaultLevel = LevelIntermediate
)

// Levels lists the five selectable proficiency levels in ascending order.
var Levels = []Level{LevelBeginner, LevelNovice, LevelIntermediate, LevelAdvanced, LevelExpert}

func (l Level) String() string {
	switch l {
	case LevelBeginner:
		return "Beginner"
	case LevelNovice:
		return "Novice"
	case LevelIntermediate:
		return "Intermediate"
	case LevelAdvanced:
		return "Advanced"
	case LevelExpert:
		return "Expert"
	default:
		return fmt.Sprintf("Level %d", int(l))
	}
}

func (l Level) Valid() bool { return l >= MinLevel && l <= MaxLevel }

// Clamp pins l into [MinLevel, MaxLevel].
func (l Level) Clamp() Level {
	if l < MinLevel {
		return MinLevel
	}
	if l > MaxLevel {
		return MaxLevel
	}
	return l
}
