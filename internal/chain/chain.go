package chain

import (
	"github.com/studydimension/ytdl-bot/internal/handlers"
	"github.com/studydimension/ytdl-bot/internal/repository"
	"github.com/studydimension/ytdl-bot/internal/session"
)

// Deps are the shared collaborators handlers need. Injected here rather
// than reached for as ambient state so tests can swap them out.
type Deps struct {
	Repo     *repository.Store
	Sessions *session.Manager
	TmpDir   string
}

type HandlerChain struct {
	rootParser handlers.ContextHandler
	sessions   *session.Manager
}

func NewChainOfResponsibility(deps Deps) *HandlerChain {
	onTextHandler := &handlers.OnTextHandler{}
	commandParsingHandler := &handlers.CommandParsingHandler{}
	chatRegistryHandler := &handlers.ChatRegistryHandler{Repo: deps.Repo}

	typingHandler := &handlers.TypingHandler{}

	startHandler := &handlers.StartHandler{Repo: deps.Repo}
	helpHandler := &handlers.HelpHandler{}
	linkResolveHandler := &handlers.LinkResolveHandler{Sessions: deps.Sessions}
	downloadHandler := &handlers.DownloadHandler{Sessions: deps.Sessions, TmpDir: deps.TmpDir}
	broadcastHandler := &handlers.BroadcastHandler{Repo: deps.Repo}

	mediaResponseHandler := &handlers.MediaResponseHandler{Sessions: deps.Sessions}
	textResponseHandler := &handlers.TextResponseHandler{}
	deleteScratchHandler := &handlers.DeleteScratchHandler{}

	endOfChainHandler := &handlers.EndOfChainHandler{Sessions: deps.Sessions, TmpDir: deps.TmpDir}

	onTextHandler.SetNext(commandParsingHandler)
	commandParsingHandler.SetNext(chatRegistryHandler)
	chatRegistryHandler.SetNext(typingHandler)

	typingHandler.SetNext(startHandler)

	startHandler.SetNext(helpHandler)
	helpHandler.SetNext(linkResolveHandler)
	linkResolveHandler.SetNext(downloadHandler)
	downloadHandler.SetNext(broadcastHandler)

	broadcastHandler.SetNext(mediaResponseHandler)
	mediaResponseHandler.SetNext(textResponseHandler)
	textResponseHandler.SetNext(deleteScratchHandler)
	deleteScratchHandler.SetNext(endOfChainHandler)

	return &HandlerChain{
		rootParser: onTextHandler,
		sessions:   deps.Sessions,
	}
}

func (h *HandlerChain) Process(msg *handlers.Context) {
	// Deferred so a panicking handler still gives back the user's
	// download slot and scratch dir before the platform recover fires.
	defer msg.Finalize(h.sessions)
	h.rootParser.Execute(msg)
}
