package dto

type EvidenciaResponse struct {
	ID            string `json:"id"`
	UsuarioID     string `json:"usuario_id"`
	NombreArchivo string `json:"nombre_archivo"`
	RutaArchivo   string `json:"ruta_archivo"`
	TipoArchivo   string `json:"tipo_archivo"`
	TamanoArchivo int64  `json:"tamano_archivo"`
	Descripcion   string `json:"descripcion"`
	CreatedAt     string `json:"created_at"`
}

// ArchivoSubido is what the handler hands to the service per uploaded file,
// after gin has parsed the multipart form.
type ArchivoSubido struct {
	NombreOriginal string
	TipoMIME       string
	Tamano         int64
	Contenido      []byte
}
