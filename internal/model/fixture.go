package model

// FixtureKind groups fixtures by the credential family they imitate.
type FixtureKind string

const (
	// FixtureAWS imitates an AWS access key id.
	FixtureAWS FixtureKind = "aws"
	// FixtureGitHub imitates a GitHub personal access token.
	FixtureGitHub FixtureKind = "github"
	// FixtureStripe imitates a Stripe secret key.
	FixtureStripe FixtureKind = "stripe"
	// FixtureMock is an obviously fake placeholder.
	FixtureMock FixtureKind = "mock"
	// FixtureGeneric is anything else.
	FixtureGeneric FixtureKind = "generic"
)

// Fixture is a single fake secret-like value used as scanner test input.
type Fixture struct {
	Name  string
	Value string
	Kind  FixtureKind
}
