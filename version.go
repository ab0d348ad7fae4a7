package arcadetools

// Version is the semantic version of the arcade-tools module, kept in sync
// with CHANGELOG.md. The 0.2.0 release moved GameElement from extending the
// rectangle to holding it in the Rect field.
const Version = "0.2.0"
