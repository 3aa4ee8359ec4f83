package chatapi

import pb "github.com/dmitrijs2005/gophchat/internal/proto"

var publicMethods = map[string]struct{}{
	pb.ChatService_Register_FullMethodName:     {},
	pb.ChatService_Login_FullMethodName:        {},
	pb.ChatService_RefreshToken_FullMethodName: {},
	pb.ChatService_Ping_FullMethodName:         {},
}

// IsPublicMethod reports whether fullMethod may be called without an access
// token.
func IsPublicMethod(fullMethod string) bool {
	_, ok := publicMethods[fullMethod]
	return ok
}
