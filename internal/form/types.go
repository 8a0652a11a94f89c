package form

// BotType describes one of the selectable assistant types.
type BotType struct {
	ID          string
	Title       string
	Description string
	// Files reports whether the type accepts attached files.
	Files bool
}

const (
	TypeChatbot       = "chatbot"
	TypeChatRetrieval = "chat_retrieval"
	TypeAgent         = "agent"
)

var botTypes = map[string]BotType{
	TypeChatbot: {
		ID:          TypeChatbot,
		Title:       "Chatbot",
		Description: "These chatbots are parameterized by a single prompt and an LLM. They can only respond in text.",
	},
	TypeChatRetrieval: {
		ID:          TypeChatRetrieval,
		Title:       "RAG",
		Description: "These chatbots have been given the ability to work with uploaded files. They always look up relevant passages from those files before answering.",
		Files:       true,
	},
	TypeAgent: {
		ID:          TypeAgent,
		Title:       "Assistant",
		Description: "These bots can be given an arbitrary number of tools. They can decide when to use them, if at all.",
		Files:       true,
	},
}

// LookupBotType returns the known type for id. Unknown ids get a bare entry titled by id.
func LookupBotType(id string) (BotType, bool) {
	bt, ok := botTypes[id]
	if !ok {
		return BotType{ID: id, Title: id}, false
	}
	return bt, true
}
