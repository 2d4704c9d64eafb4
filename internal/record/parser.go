package record

import (
	"fmt"
	"strings"

	"josekle/internal/domain/sgf"
)

// SyntaxError описывает ошибку разбора SGF. Offset указывает байт, на котором разбор остановился.
type SyntaxError struct {
	Offset  int
	Message string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("sgf syntax error at offset %d: %s", e.Offset, e.Message)
}

// Parse разбирает текст и возвращает первое дерево коллекции.
func Parse(text string) (*sgf.GameTree, error) {
	coll, err := ParseCollection(text)
	if err != nil {
		return nil, err
	}
	return coll.Trees[0], nil
}

// ParseCollection разбирает всю коллекцию: Collection := GameTree+.
// Всё до первой открывающей скобки пропускается, разбор останавливается на первой ошибке.
func ParseCollection(text string) (*sgf.Collection, error) {
	p := &parser{text: text}
	if err := p.skipToOpenParen(); err != nil {
		return nil, err
	}

	coll := &sgf.Collection{}
	for {
		tree, err := p.parseTree()
		if err != nil {
			return nil, err
		}
		coll.Trees = append(coll.Trees, tree)
		p.white()
		if p.ch() != '(' {
			return coll, nil
		}
	}
}

type parser struct {
	text string
	at   int
}

func (p *parser) more() bool {
	return p.at < len(p.text)
}

// ch возвращает текущий байт или 0 в конце текста.
func (p *parser) ch() byte {
	if !p.more() {
		return 0
	}
	return p.text[p.at]
}

func (p *parser) errorf(format string, args ...any) error {
	return &SyntaxError{Offset: p.at, Message: fmt.Sprintf(format, args...)}
}

// expect проверяет текущий символ и сдвигается на один вперёд.
func (p *parser) expect(c byte) error {
	if !p.more() {
		return p.errorf("expected '%c' instead of end of input", c)
	}
	if p.text[p.at] != c {
		return p.errorf("expected '%c' instead of '%c'", c, p.text[p.at])
	}
	p.at++
	return nil
}

func (p *parser) next() {
	p.at++
}

func (p *parser) white() {
	for p.more() && p.text[p.at] <= ' ' {
		p.at++
	}
}

func (p *parser) skipToOpenParen() error {
	for p.more() && p.text[p.at] != '(' {
		p.at++
	}
	if !p.more() {
		return p.errorf("missing opening parenthesis of game tree")
	}
	return nil
}

// lineBreak распознаёт CR, LF, CR+LF и LF+CR. Для двухсимвольного перевода
// строки курсор сдвигается на второй символ.
func (p *parser) lineBreak() bool {
	switch p.ch() {
	case '\n':
		if p.at+1 < len(p.text) && p.text[p.at+1] == '\r' {
			p.next()
		}
		return true
	case '\r':
		if p.at+1 < len(p.text) && p.text[p.at+1] == '\n' {
			p.next()
		}
		return true
	}
	return false
}

// GameTree := '(' Sequence GameTree* ')'
func (p *parser) parseTree() (*sgf.GameTree, error) {
	if err := p.expect('('); err != nil {
		return nil, err
	}
	p.white()
	if p.ch() != ';' {
		return nil, p.errorf("game tree missing root node")
	}

	tree := &sgf.GameTree{}
	for p.ch() == ';' {
		node, err := p.parseNode()
		if err != nil {
			return nil, err
		}
		tree.Nodes = append(tree.Nodes, node)
		p.white()
	}
	for p.ch() == '(' {
		child, err := p.parseTree()
		if err != nil {
			return nil, err
		}
		tree.Children = append(tree.Children, child)
		p.white()
	}
	if err := p.expect(')'); err != nil {
		return nil, err
	}
	return tree, nil
}

// Node := ';' Property*
func (p *parser) parseNode() (sgf.Node, error) {
	var node sgf.Node
	if err := p.expect(';'); err != nil {
		return node, err
	}
	p.white()

	for p.more() {
		if c := p.ch(); c == ';' || c == '(' || c == ')' {
			break
		}
		prop, err := p.parseProperty()
		if err != nil {
			return node, err
		}
		node.Properties = append(node.Properties, prop)
		p.white()
	}
	return node, nil
}

// Property := UcLetter+ Value+. Строчные буквы в идентификаторе пропускаются.
func (p *parser) parseProperty() (sgf.Property, error) {
	var id strings.Builder
	for p.more() && isLetter(p.ch()) {
		if c := p.ch(); c >= 'A' && c <= 'Z' {
			id.WriteByte(c)
		}
		p.next()
	}
	if id.Len() == 0 {
		return sgf.Property{}, p.errorf("missing property id")
	}

	prop := sgf.Property{ID: id.String()}
	p.white()
	for p.ch() == '[' {
		value, err := p.parseValue()
		if err != nil {
			return prop, err
		}
		prop.Values = append(prop.Values, value)
		p.white()
	}
	if len(prop.Values) == 0 {
		return prop, p.errorf("missing values of property %s", prop.ID)
	}
	return prop, nil
}

// Value := '[' text ']'. Экранированный перевод строки удаляется,
// обычный превращается в '\n', прочие пробельные символы превращаются в пробел.
func (p *parser) parseValue() (string, error) {
	if err := p.expect('['); err != nil {
		return "", err
	}

	var value strings.Builder
	for p.more() && p.ch() != ']' {
		escaped := p.ch() == '\\'
		if escaped {
			p.next()
			if !p.more() {
				break
			}
		}
		switch {
		case p.lineBreak():
			if !escaped {
				value.WriteByte('\n')
			}
		case p.ch() <= ' ':
			value.WriteByte(' ')
		default:
			value.WriteByte(p.ch())
		}
		p.next()
	}
	if err := p.expect(']'); err != nil {
		return "", err
	}
	return value.String(), nil
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
