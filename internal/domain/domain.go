package domain

import "github.com/yungbote/eerste-dingen/internal/domain/learner"

type ClientPreference = learner.ClientPreference
