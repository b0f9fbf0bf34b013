package sax

// elementContext holds the data of the tag being read. It is reused for every tag.
type elementContext struct {
	name      []byte
	attrName  []byte
	attrValue []byte
	attrs     Attributes

	isDefinition  bool // <? ... ?>
	isClosingTag  bool // </ ... >
	isSelfClosing bool // < ... />
}

func newElementContext() elementContext {
	return elementContext{
		name:      make([]byte, 0, 128),
		attrName:  make([]byte, 0, 128),
		attrValue: make([]byte, 0, 128),
		attrs:     Attributes{},
	}
}

// storeAttribute adds the pending attribute, keeping the first value of a duplicate name.
func (ctx *elementContext) storeAttribute() {
	name := string(ctx.attrName)
	if _, ok := ctx.attrs[name]; !ok {
		ctx.attrs[name] = string(ctx.attrValue)
	}
	ctx.attrName = ctx.attrName[:0]
	ctx.attrValue = ctx.attrValue[:0]
}

func (ctx *elementContext) clear() {
	ctx.name = ctx.name[:0]
	ctx.attrName = ctx.attrName[:0]
	ctx.attrValue = ctx.attrValue[:0]
	for k := range ctx.attrs {
		delete(ctx.attrs, k)
	}
	ctx.isDefinition = false
	ctx.isClosingTag = false
	ctx.isSelfClosing = false
}
