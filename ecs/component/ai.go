package component

// AI holds the enemy's reactive tuning. AttackRange must stay below
// ChaseRange. Script optionally names a tengo brain in prefabs/scripts that
// replaces the built-in distance decision.
type AI struct {
	ChaseRange  float64
	AttackRange float64
	Script      string
}

// AIDecision is the desired state computed by the enemy brain each tick and
// consumed by the actor state system.
type AIDecision struct {
	State ActorState
}

var AIComponent = NewComponent[AI]()
var AIDecisionComponent = NewComponent[AIDecision]()
