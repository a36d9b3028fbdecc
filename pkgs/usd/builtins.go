package usd

// Vocabulary of the USD ASCII format. These are plain data, versioned with
// the lexer: adding a newly standardized schema attribute or value type is
// an edit here, never an engine change. Matching is whole-word and
// case-sensitive.

// Keywords are the structural keywords of the format.
var Keywords = []string{
	"class",
	"clips",
	"custom",
	"customData",
	"def",
	"dictionary",
	"inherits",
	"over",
	"payload",
	"references",
	"rel",
	"subLayers",
	"timeSamples",
	"uniform",
	"variantSet",
	"variantSets",
	"variants",
}

// SpecialNames are well-known prim and layer metadata fields.
var SpecialNames = []string{
	"active",
	"apiSchemas",
	"defaultPrim",
	"elementSize",
	"endTimeCode",
	"hidden",
	"instanceable",
	"interpolation",
	"kind",
	"startTimeCode",
	"upAxis",
}

// CommonAttributes are attribute names common enough across schemas to
// highlight even outside a declaration header.
var CommonAttributes = []string{
	"extent",
	"xformOpOrder",
	"faceVertexCounts",
	"faceVertexIndices",
	"points",
	"primvars:displayColor",
}

// Operators are the list-editing operation keywords.
var Operators = []string{
	"add",
	"append",
	"delete",
	"prepend",
	"reorder",
	"rootPrims",
}

// Types are the value type names of the format.
var Types = []string{
	"asset",
	"bool",
	"color3d",
	"color3f",
	"color3h",
	"color4d",
	"color4f",
	"color4h",
	"double",
	"double2",
	"double3",
	"double4",
	"float",
	"float2",
	"float3",
	"float4",
	"frame4d",
	"half",
	"half2",
	"half3",
	"half4",
	"int",
	"int2",
	"int3",
	"int4",
	"matrix2d",
	"matrix3d",
	"matrix4d",
	"normal3d",
	"normal3f",
	"normal3h",
	"point3d",
	"point3f",
	"point3h",
	"quatd",
	"quatf",
	"quath",
	"string",
	"syn",
	"token",
	"uchar",
	"uchar2",
	"uchar3",
	"uchar4",
	"uint",
	"uint2",
	"uint3",
	"uint4",
	"usdaType",
	"vector3d",
	"vector3f",
	"vector3h",
	"vertex",
}
