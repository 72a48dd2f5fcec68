package bodymap

// Zone is a named region of the body-zone catalog.
type Zone struct {
	Id             string
	Label          string
	AnatomicalName string
}

var zoneCatalog = map[string]Zone{
	"neck":           {"neck", "Neck", "cervical spine"},
	"shoulder_left":  {"shoulder_left", "Left shoulder", "left deltoid"},
	"shoulder_right": {"shoulder_right", "Right shoulder", "right deltoid"},
	"upper_back":     {"upper_back", "Upper back", "thoracic spine"},
	"lower_back":     {"lower_back", "Lower back", "lumbar spine"},
	"chest":          {"chest", "Chest", "pectoral region"},
	"abdomen":        {"abdomen", "Abdomen", "abdominal region"},
	"hip_left":       {"hip_left", "Left hip", "left iliac region"},
	"hip_right":      {"hip_right", "Right hip", "right iliac region"},
	"thigh_left":     {"thigh_left", "Left thigh", "left quadriceps"},
	"thigh_right":    {"thigh_right", "Right thigh", "right quadriceps"},
	"calf_left":      {"calf_left", "Left calf", "left gastrocnemius"},
	"calf_right":     {"calf_right", "Right calf", "right gastrocnemius"},
	"arm_left":       {"arm_left", "Left arm", "left biceps"},
	"arm_right":      {"arm_right", "Right arm", "right biceps"},
	"head":           {"head", "Head", "cranial region"},
}

// ZoneById resolves a zone id against the catalog. Unknown ids fall back to
// a zone labeled with the raw id so findings for new zones still render.
func ZoneById(id string) Zone {
	if zone, ok := zoneCatalog[id]; ok {
		return zone
	}
	return Zone{Id: id, Label: id, AnatomicalName: id}
}
