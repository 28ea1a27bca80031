package types

// MeshID identifies one of the meshes participating in a zipper pass.
//
// A Vertex's origin mesh tag is a MeshID rather than a pointer so that
// spatial-index rejection (spec §4.1's reject_origin) and cross-mesh
// references survive independently of any one mesh's lifetime.
type MeshID int

// NilMesh is a sentinel value representing no mesh (accept any origin).
const NilMesh MeshID = -1
