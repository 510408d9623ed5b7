package detectors

import (
	"javacheck/internal/lexical"
	"javacheck/internal/models"
)

func creationalRules() []PatternRule {
	return []PatternRule{
		{
			Key:        models.PatternSingleton,
			Confidence: 0.95,
			Theory:     "Singleton Design Pattern",
			Match: func(f *lexical.Features) bool {
				hasPrivateConstructor := f.Has("private ") && f.Has("()")
				hasStaticInstance := (f.Has("static") && f.HasLower("instance")) || f.Has("private static")
				hasGetInstance := f.Has("getInstance") || f.Has("instance()")
				return hasPrivateConstructor && hasStaticInstance && hasGetInstance
			},
		},
		{
			Key:        models.PatternFactory,
			Confidence: 0.92,
			Theory:     "Factory Design Pattern",
			Match: func(f *lexical.Features) bool {
				hasFactoryKeywords := f.Has("getCar") || f.Has("getProduct") ||
					f.Has("createButton") || f.Has("create") || f.Has("Factory")
				hasSwitchReturn := f.Has("switch") && f.Has("return new")
				hasIfReturn := f.NumIf >= 2 && f.Has("return new")
				return (hasFactoryKeywords && (hasSwitchReturn || hasIfReturn)) ||
					(f.Has("Factory") && f.Has("return new") && f.NumStatic >= 1)
			},
		},
		{
			Key:        models.PatternBuilder,
			Confidence: 0.93,
			Theory:     "Builder Design Pattern",
			Match: func(f *lexical.Features) bool {
				hasBuilderClass := (f.Has("Builder") || f.HasLower("builder")) && f.NumClasses >= 2
				hasBuildMethod := f.Has("build()") || f.Has(".build()")
				hasFluentAPI := f.Has("return this")
				hasChaining := f.Count("return this") >= 2
				return (hasBuilderClass && hasBuildMethod && hasFluentAPI) ||
					(hasChaining && hasBuildMethod)
			},
		},
		{
			Key:        models.PatternPrototype,
			Confidence: 0.90,
			Theory:     "Prototype Design Pattern",
			Match: func(f *lexical.Features) bool {
				hasClone := f.Has(".clone()") || f.Has("clone()") ||
					(f.Has("@Override") && f.HasLower("clone"))
				hasCloneable := f.Has("Cloneable") || f.Has("implements Cloneable")
				hasCopyConstructor := f.Has("(this)")
				return hasClone || hasCloneable || (hasCopyConstructor && f.NumMethods >= 1)
			},
		},
		{
			Key:        models.PatternAbstractFactory,
			Confidence: 0.88,
			Theory:     "Abstract Factory Design Pattern",
			Match: func(f *lexical.Features) bool {
				hasAbstractFactory := f.Has("AbstractFactory") ||
					(f.HasLower("abstract") && f.Has("Factory"))
				hasFactoryInterface := f.Has("interface") && f.Has("Factory")
				hasMultipleCreate := f.Count("create") >= 2 || f.Count("Factory") >= 2
				return hasAbstractFactory ||
					(hasFactoryInterface && hasMultipleCreate && f.NumInterfaces >= 1)
			},
		},
	}
}
