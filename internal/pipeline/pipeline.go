// Package pipeline chains the strategist, composer, motion synthesizer and
// publisher for callers that want a finished package in one call.
package pipeline

import (
	"fmt"

	"designarena/internal/composer"
	"designarena/internal/domain"
	"designarena/internal/motion"
	"designarena/internal/publisher"
	"designarena/internal/strategist"
)

type Options struct {
	Seed       uint64
	MotionIdea int
	SkipMotion bool
	Locale     string
}

type Result struct {
	Plan    domain.Plan
	Visuals []domain.VisualAsset
	Motion  *domain.MotionAsset
	Folder  string
	Archive []byte
}

func Run(brief domain.Brief, opts Options) (*Result, error) {
	plan := strategist.Generate(brief, strategist.NewSource(opts.Seed))
	res := &Result{
		Plan:    plan,
		Visuals: composer.ComposePlan(plan),
		Folder:  publisher.FolderName(plan.Summary),
	}
	if !opts.SkipMotion {
		idea, err := motion.SelectIdea(plan, opts.MotionIdea)
		if err != nil {
			return nil, fmt.Errorf("pipeline: motion: %w", err)
		}
		m := motion.Synthesize(idea)
		res.Motion = &m
	}
	archive, err := publisher.Package(&res.Plan, res.Visuals, res.Motion, publisher.Options{Locale: opts.Locale})
	if err != nil {
		return nil, fmt.Errorf("pipeline: package: %w", err)
	}
	res.Archive = archive
	return res, nil
}
