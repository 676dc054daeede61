package gameframe

import (
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/provide-io/gameframe/internal/userdirs"
	gferrors "github.com/provide-io/gameframe/pkg/gameframe/errors"
	"github.com/provide-io/gameframe/pkg/utils/launchopts"
)

// Plan is everything a launch needs: the final argv, the derived
// environment and the config files to rewrite. Building a plan touches the
// filesystem only to look for a runner.
type Plan struct {
	// Command is the command the user asked for, args[0].
	Command string
	// Args is the user's argument list as given.
	Args []string
	// Argv is what gets executed.
	Argv []string

	Env     *Environment
	Files   []ConfigFile
	Runner  *Runner
	Toggles Toggles

	// ProfileName is set when a per-game profile was applied.
	ProfileName string
}

// PlanOptions carries what BuildPlan needs besides the arguments.
type PlanOptions struct {
	Dirs     userdirs.Dirs
	Profiles Profiles
	Logger   hclog.Logger
}

// BuildPlan resolves args and toggles into a Plan.
func BuildPlan(args []string, toggles Toggles, opts PlanOptions) (*Plan, error) {
	if len(args) == 0 {
		return nil, gferrors.ErrNoCommand
	}
	logger := opts.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	plan := &Plan{
		Command: args[0],
		Args:    append([]string(nil), args...),
		Env:     NewEnvironment(),
	}

	var profile *Profile
	if toggles.Profile {
		if p, ok := opts.Profiles.Lookup(plan.Command); ok {
			profile = &p
			plan.ProfileName = p.Name
			toggles = toggles.WithProfile(p)
			logger.Info("🎯 Applying game profile", "profile", p.Name)
		} else {
			logger.Debug("🎯 No profile for command", "command", plan.Command)
		}
	}
	plan.Toggles = toggles

	// Launch option assignments go in first so they win over derived values.
	var options *launchopts.Template
	if profile != nil && profile.LaunchOptions != "" {
		tmpl, err := launchopts.Parse(profile.LaunchOptions)
		if err != nil {
			return nil, fmt.Errorf("%w: profile %s: %v", gferrors.ErrInvalidLaunchOptions, profile.Name, err)
		}
		options = &tmpl
		for _, a := range tmpl.Env {
			plan.Env.Set(a.Name, a.Value)
		}
	}

	if toggles.GraphicsAPI != "" {
		logger.Debug("🖼️ Graphics API hint is informational only", "api", toggles.GraphicsAPI)
	}

	for _, name := range EnabledRules(toggles) {
		logger.Debug("🔧 Toggle enabled", "toggle", name)
	}
	plan.Files = Materialize(toggles, opts.Dirs, plan.Env)

	runner, runnerFiles := resolveRunner(plan.Command, opts.Dirs, plan.Env, logger)
	plan.Runner = runner
	plan.Files = append(plan.Files, runnerFiles...)

	plan.Argv = buildArgv(plan.Args, plan.Env)
	if options != nil {
		plan.Argv = options.Apply(plan.Argv)
	}

	return plan, nil
}
