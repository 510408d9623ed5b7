package detectors

import (
	"javacheck/internal/lexical"
	"javacheck/internal/models"
)

func structuralRules() []PatternRule {
	return []PatternRule{
		{
			Key:        models.PatternAdapter,
			Confidence: 0.91,
			Theory:     "Adapter Design Pattern",
			Match: func(f *lexical.Features) bool {
				hasAdaptee := f.HasLower("adaptee") || f.HasLower("wrapped")
				hasDelegation := f.Has("adaptee.") || f.Has(".playVlc") || f.Has("legacy.")
				return f.Has("Adapter") ||
					(hasAdaptee && f.Has("implements")) ||
					(hasDelegation && f.Has("implements"))
			},
		},
		{
			Key:        models.PatternDecorator,
			Confidence: 0.90,
			Theory:     "Decorator Design Pattern",
			Match: func(f *lexical.Features) bool {
				hasComponent := f.HasLower("component") || f.Has("Component")
				wrapsAndCalls := f.Has("component.") && f.Has("implements")
				return f.Has("Decorator") || (hasComponent && wrapsAndCalls && f.NumClasses >= 1)
			},
		},
		{
			Key:        models.PatternProxy,
			Confidence: 0.89,
			Theory:     "Proxy Design Pattern",
			Match: func(f *lexical.Features) bool {
				hasRealSubject := f.HasLower("real") && (f.Has("Subject") || f.Has("Image"))
				hasCheckAccess := f.Has("checkAccess") ||
					(f.HasLower("check") && f.HasLower("access"))
				return f.Has("Proxy") ||
					(hasRealSubject && hasCheckAccess) ||
					(f.HasLower("real.") && f.Has("implements"))
			},
		},
		{
			Key:        models.PatternComposite,
			Confidence: 0.88,
			Theory:     "Composite Design Pattern",
			Match: func(f *lexical.Features) bool {
				hasChildren := f.HasLower("children") || f.Has("List<Component>")
				hasAddMethod := f.Has(".add(") && hasChildren
				hasLoopChildren := f.Has("for") && f.HasLower("children")
				return f.Has("Composite") || (hasChildren && hasAddMethod) || hasLoopChildren
			},
		},
		{
			Key:        models.PatternFacade,
			Confidence: 0.87,
			Theory:     "Facade Design Pattern",
			Match: func(f *lexical.Features) bool {
				return f.Has("Facade")
			},
		},
		{
			Key:        models.PatternBridge,
			Confidence: 0.86,
			Theory:     "Bridge Design Pattern",
			Match: func(f *lexical.Features) bool {
				hasImplementation := f.HasLower("implementation") || f.Has("DrawingAPI")
				hasAbstractShape := f.Has("abstract") && (f.Has("Shape") || f.Has("class"))
				return f.Has("Bridge") || (hasImplementation && hasAbstractShape)
			},
		},
		{
			Key:        models.PatternFlyweight,
			Confidence: 0.85,
			Theory:     "Flyweight Design Pattern",
			Match: func(f *lexical.Features) bool {
				hasCache := f.HasLower("cache") || f.Has("Map<") || f.Has("HashMap")
				hasGetOrCreate := f.Has("containsKey") || (f.Has("get") && f.Has("put"))
				return f.Has("Flyweight") || (hasCache && hasGetOrCreate)
			},
		},
	}
}
