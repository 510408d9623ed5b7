package detectors

import (
	"javacheck/internal/lexical"
	"javacheck/internal/models"
)

func behavioralRules() []PatternRule {
	return []PatternRule{
		{
			Key:        models.PatternStrategy,
			Confidence: 0.90,
			Theory:     "Strategy Design Pattern",
			Match: func(f *lexical.Features) bool {
				hasSetStrategy := f.Has("setStrategy") || f.HasLower("strategy")
				return f.Has("Strategy") || (f.Has("Context") && hasSetStrategy)
			},
		},
		{
			Key:        models.PatternObserver,
			Confidence: 0.89,
			Theory:     "Observer Design Pattern",
			Match: func(f *lexical.Features) bool {
				hasObserversList := f.Has("List<Observer>") || f.HasLower("observers")
				hasNotify := f.HasLower("notify") || f.HasLower("update")
				hasAttach := f.HasLower("attach") || f.HasLower("register")
				return f.Has("Observer") || (hasObserversList && (hasNotify || hasAttach))
			},
		},
		{
			Key:        models.PatternCommand,
			Confidence: 0.88,
			Theory:     "Command Design Pattern",
			Match: func(f *lexical.Features) bool {
				hasExecute := f.Has("execute()") || f.Has("execute(")
				hasReceiver := f.HasLower("receiver") || (f.Has("Light") && f.Has("Command"))
				return f.Has("Command") || (hasExecute && hasReceiver)
			},
		},
		{
			Key:        models.PatternTemplateMethod,
			Confidence: 0.87,
			Theory:     "Template Method Design Pattern",
			Match: func(f *lexical.Features) bool {
				hasAbstractMethod := f.Has("abstract") && f.NumMethods >= 2
				hasFinalMethod := f.Has("final") && f.HasLower("process")
				return f.Has("Template") ||
					(hasAbstractMethod && f.Has("abstract void")) ||
					hasFinalMethod
			},
		},
		{
			Key:        models.PatternIterator,
			Confidence: 0.92,
			Theory:     "Iterator Design Pattern",
			Match: func(f *lexical.Features) bool {
				return f.Has("Iterator") || f.Has("implements Iterator") ||
					(f.Has("hasNext()") && f.Has("next()"))
			},
		},
		{
			Key:        models.PatternState,
			Confidence: 0.86,
			Theory:     "State Design Pattern",
			Match: func(f *lexical.Features) bool {
				hasState := f.Has("State") && f.NumClasses >= 1
				hasSetState := f.Has("setState") || f.Has("changeState")
				return hasState || hasSetState || f.Has("interface State")
			},
		},
		{
			Key:        models.PatternChainOfResponsibility,
			Confidence: 0.85,
			Theory:     "Chain Of Responsibility Design Pattern",
			Match: func(f *lexical.Features) bool {
				hasNextHandler := f.Has("nextHandler") || f.Has("setNext")
				hasHandleRequest := f.Has("handleRequest") || f.Has("handle(")
				return f.Has("Chain") || f.Has("Handler") ||
					(hasNextHandler && hasHandleRequest)
			},
		},
		{
			Key:        models.PatternMediator,
			Confidence: 0.84,
			Theory:     "Mediator Design Pattern",
			Match: func(f *lexical.Features) bool {
				hasChat := f.Has("Chat") && f.Has("Mediator")
				return f.Has("Mediator") || (hasChat && f.Has("sendMessage"))
			},
		},
		{
			Key:        models.PatternMemento,
			Confidence: 0.86,
			Theory:     "Memento Design Pattern",
			Match: func(f *lexical.Features) bool {
				hasSaveRestore := (f.Has("saveState") || f.HasLower("save")) && f.HasLower("restore")
				return f.Has("Memento") || f.Has("Caretaker") || f.Has("Originator") || hasSaveRestore
			},
		},
		{
			Key:        models.PatternVisitor,
			Confidence: 0.88,
			Theory:     "Visitor Design Pattern",
			Match: func(f *lexical.Features) bool {
				hasAccept := f.Has("accept(") || f.Has("accept (")
				return f.Has("Visitor") || (hasAccept && f.Has("visit("))
			},
		},
		{
			Key:        models.PatternInterpreter,
			Confidence: 0.87,
			Theory:     "Interpreter Design Pattern",
			Match: func(f *lexical.Features) bool {
				hasInterpreter := f.Has("Interpreter") || f.Has("Expression")
				hasInterpret := f.Has("interpret()") || f.Has("interpret(")
				hasNumberExpr := f.Has("NumberExpression") || f.Has("AddExpression")
				return hasInterpreter || hasInterpret || hasNumberExpr
			},
		},
	}
}
