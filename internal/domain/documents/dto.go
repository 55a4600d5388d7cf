package documents

// UploadForm is the multipart metadata for a new document. The file
// itself arrives as the "file" part, an optional preview as "thumbnail".
type UploadForm struct {
	Title       string `form:"title" binding:"required"`
	Description string `form:"description"`
	IconName    string `form:"icon_name" binding:"required"`
}

// UpdateForm updates metadata; the file parts are optional and replace
// the stored file when present.
type UpdateForm struct {
	Title       string `form:"title" binding:"required"`
	Description string `form:"description"`
	IconName    string `form:"icon_name" binding:"required"`
}
