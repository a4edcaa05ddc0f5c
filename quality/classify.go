package quality

// CanCollapse reports whether an edge may collapse so that the vertex
// classified on (removedDim, removedID) is removed while the vertex
// classified on (survivorDim, survivorID) survives in its place,
// without reducing the dimension of any geometric feature the removed
// vertex was classified on (spec §4.5).
//
// Complexity: O(1).
func CanCollapse(survivorDim, survivorID, removedDim, removedID uint32) bool {
	if survivorDim > removedDim {
		return false
	}
	if survivorDim == removedDim && survivorID != removedID {
		return false
	}
	return true
}

// SplitClassification returns the classification a newly split entity
// inherits from its source entity's vertices: the minimum class_dim
// among them, and the class_id of whichever vertex attains that
// minimum (ties broken by the lowest vertex index, i.e. the first
// occurrence in classDim/classID).
//
// Complexity: O(len(classDim)).
func SplitClassification(classDim, classID []uint32) (dim, id uint32) {
	dim = classDim[0]
	id = classID[0]
	for i := 1; i < len(classDim); i++ {
		if classDim[i] < dim {
			dim = classDim[i]
			id = classID[i]
		}
	}
	return dim, id
}
