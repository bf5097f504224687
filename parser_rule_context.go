// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

// ParserRuleContext is the internal tree node one rule invocation builds:
// it is both the [RuleContext] frame the prediction-context algorithms
// walk and the [ParseTree] node the parser attaches children to.
type ParserRuleContext interface {
	RuleContext

	SetException(RecognitionException)
	GetException() RecognitionException

	AddTokenNode(token Token) TerminalNode
	AddErrorNode(badToken Token) ErrorNode

	AddChild(child RuleContext)
	RemoveLastChild()

	GetStart() Token
	GetStop() Token
	SetStart(Token)
	SetStop(Token)

	GetChildren() []Tree
}

// BaseParserRuleContext is the concrete type embedded by every generated
// parser rule context.
type BaseParserRuleContext struct {
	*BaseRuleContext

	start, stop Token
	exception   RecognitionException
	children    []Tree
}

// NewBaseParserRuleContext builds a rule context invoked from parent at
// invokingState; parent is nil for the outermost (start-rule) context.
func NewBaseParserRuleContext(parent ParserRuleContext, invokingState int) *BaseParserRuleContext {
	var p RuleContext
	if parent != nil {
		p = parent
	}
	return &BaseParserRuleContext{BaseRuleContext: NewBaseRuleContext(p, invokingState)}
}

func (p *BaseParserRuleContext) GetParent() Tree {
	if p.parent == nil {
		return nil
	}
	return p.parent.(Tree)
}

func (p *BaseParserRuleContext) SetParent(t Tree) {
	if t == nil {
		p.parent = nil
		return
	}
	p.parent = t.(RuleContext)
}

func (p *BaseParserRuleContext) SetException(e RecognitionException) { p.exception = e }
func (p *BaseParserRuleContext) GetException() RecognitionException  { return p.exception }

func (p *BaseParserRuleContext) GetStart() Token  { return p.start }
func (p *BaseParserRuleContext) GetStop() Token   { return p.stop }
func (p *BaseParserRuleContext) SetStart(t Token) { p.start = t }
func (p *BaseParserRuleContext) SetStop(t Token)  { p.stop = t }

func (p *BaseParserRuleContext) AddChild(child RuleContext) {
	p.children = append(p.children, child.(Tree))
}

func (p *BaseParserRuleContext) AddTokenNode(token Token) TerminalNode {
	node := NewTerminalNodeImpl(token)
	p.children = append(p.children, node)
	node.SetParent(p)
	return node
}

func (p *BaseParserRuleContext) AddErrorNode(badToken Token) ErrorNode {
	node := NewErrorNodeImpl(badToken)
	p.children = append(p.children, node)
	node.SetParent(p)
	return node
}

// RemoveLastChild discards the most recently added child, if any.
func (p *BaseParserRuleContext) RemoveLastChild() {
	if len(p.children) > 0 {
		p.children = p.children[:len(p.children)-1]
	}
}

func (p *BaseParserRuleContext) GetChildren() []Tree { return p.children }

func (p *BaseParserRuleContext) GetChild(i int) Tree {
	if i < 0 || i >= len(p.children) {
		return nil
	}
	return p.children[i]
}

func (p *BaseParserRuleContext) GetChildCount() int { return len(p.children) }

// GetSourceInterval is the [start.TokenIndex, stop.TokenIndex] span this
// rule consumed; empty before the rule has matched anything.
func (p *BaseParserRuleContext) GetSourceInterval() *Interval {
	if p.start == nil || p.stop == nil {
		return NewInterval(-1, -2)
	}
	return NewInterval(p.start.GetTokenIndex(), p.stop.GetTokenIndex())
}

func (p *BaseParserRuleContext) GetText() string {
	if p.GetChildCount() == 0 {
		return ""
	}
	s := ""
	for _, c := range p.children {
		if pt, ok := c.(ParseTree); ok {
			s += pt.GetText()
		}
	}
	return s
}

func (p *BaseParserRuleContext) GetRuleContext() RuleContext { return p }

func (p *BaseParserRuleContext) String(ruleNames []string, stop RuleContext) string {
	s := "["
	c := RuleContext(p)
	for c != nil && c != stop {
		if ruleNames != nil {
			ri := c.GetRuleIndex()
			name := itoa(ri)
			if ri >= 0 && ri < len(ruleNames) {
				name = ruleNames[ri]
			}
			s += name
		} else if !c.IsEmpty() {
			s += itoa(c.GetInvokingState())
		}
		parent := c.GetParent()
		if parent == nil {
			break
		}
		pc, ok := parent.(RuleContext)
		if !ok {
			break
		}
		if pc != stop {
			s += " "
		}
		c = pc
	}
	return s + "]"
}
