package lingo

// ChunkType is the granularity of a string chunk expression.
type ChunkType uint

const (
	ChunkChar ChunkType = iota + 1
	ChunkWord
	ChunkItem
	ChunkLine
)

// the same code means different things depending on which table you ask,
// so callers have to pick the right one

var ChunkTypeNames = map[ChunkType]string{
	ChunkChar: "char",
	ChunkWord: "word",
	ChunkItem: "item",
	ChunkLine: "line",
}

var MoviePropertyNames00 = map[uint]string{
	0x00: "floatPrecision",
	0x01: "mouseDownScript",
	0x02: "mouseUpScript",
	0x03: "keyDownScript",
	0x04: "keyUpScript",
	0x05: "timeoutScript",
	0x06: "short time",
	0x07: "abbr time",
	0x08: "long time",
	0x09: "short date",
	0x0a: "abbr date",
	0x0b: "long date",
}

var MenuPropertyNames = map[uint]string{
	0x01: "name",
	0x02: "number of menuItems",
}

var MenuItemPropertyNames = map[uint]string{
	0x01: "name",
	0x02: "checkMark",
	0x03: "enabled",
	0x04: "script",
}

var SoundPropertyNames = map[uint]string{
	0x01: "volume",
}

var SpritePropertyNames = map[uint]string{
	0x01: "type",
	0x02: "backColor",
	0x03: "bottom",
	0x04: "castNum",
	0x05: "constraint",
	0x06: "cursor",
	0x07: "foreColor",
	0x08: "height",
	0x0a: "ink",
	0x0b: "left",
	0x0c: "lineSize",
	0x0d: "locH",
	0x0e: "locV",
	0x0f: "movieRate",
	0x10: "movieTime",
	0x12: "puppet",
	0x13: "right",
	0x14: "startTime",
	0x15: "stopTime",
	0x16: "stretch",
	0x17: "top",
	0x18: "trails",
	0x19: "visible",
	0x1a: "volume",
	0x1b: "width",
	0x1d: "scriptNum",
	0x1e: "moveableSprite",
	0x20: "scoreColor",
}

var MoviePropertyNames07 = map[uint]string{
	0x01: "beepOn",
	0x02: "buttonStyle",
	0x03: "centerStage",
	0x04: "checkBoxAccess",
	0x05: "checkboxType",
	0x06: "colorDepth",
	0x08: "exitLock",
	0x09: "fixStageSize",
	0x13: "timeoutLapsed",
	0x17: "selEnd",
	0x18: "selStart",
	0x19: "soundEnabled",
	0x1a: "soundLevel",
	0x1b: "stageColor",
	0x1d: "stillDown",
	0x1e: "timeoutKeyDown",
	0x1f: "timeoutLength",
	0x20: "timeoutMouse",
	0x21: "timeoutPlay",
	0x22: "timer",
}

var MoviePropertyNames08 = map[uint]string{
	0x01: "perFrameHook",
	0x02: "number of castMembers",
	0x03: "number of menus",
}

var CastPropertyNames09 = map[uint]string{
	0x01: "name",
	0x02: "text",
	0x08: "picture",
	0x0a: "number",
	0x0b: "size",
	0x11: "foreColor",
	0x12: "backColor",
}

var FieldPropertyNames = map[uint]string{
	0x03: "textStyle",
	0x04: "textFont",
	0x05: "textHeight",
	0x06: "textAlign",
	0x07: "textSize",
}

var CastPropertyNames0D = map[uint]string{
	0x01: "sound",
}

// Name looks code up in names, giving "ERROR" if it isn't there.
func Name[K comparable](names map[K]string, code K) string {
	if name, ok := names[code]; ok {
		return name
	}
	return "ERROR"
}

func (c ChunkType) String() string {
	return Name(ChunkTypeNames, c)
}
