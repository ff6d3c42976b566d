package goodp

// XML namespace constants for the OpenDocument format.
const (
	nsOffice       = "urn:oasis:names:tc:opendocument:xmlns:office:1.0"
	nsDraw         = "urn:oasis:names:tc:opendocument:xmlns:drawing:1.0"
	nsText         = "urn:oasis:names:tc:opendocument:xmlns:text:1.0"
	nsSVG          = "urn:oasis:names:tc:opendocument:xmlns:svg-compatible:1.0"
	nsPresentation = "urn:oasis:names:tc:opendocument:xmlns:presentation:1.0"
	nsManifest     = "urn:oasis:names:tc:opendocument:xmlns:manifest:1.0"
	nsStyle        = "urn:oasis:names:tc:opendocument:xmlns:style:1.0"
	nsFO           = "urn:oasis:names:tc:opendocument:xmlns:xsl-fo-compatible:1.0"
	nsTable        = "urn:oasis:names:tc:opendocument:xmlns:table:1.0"
	nsMeta         = "urn:oasis:names:tc:opendocument:xmlns:meta:1.0"
	nsNumber       = "urn:oasis:names:tc:opendocument:xmlns:datastyle:1.0"
	nsChart        = "urn:oasis:names:tc:opendocument:xmlns:chart:1.0"
	nsDr3D         = "urn:oasis:names:tc:opendocument:xmlns:dr3d:1.0"
	nsForm         = "urn:oasis:names:tc:opendocument:xmlns:form:1.0"
	nsScript       = "urn:oasis:names:tc:opendocument:xmlns:script:1.0"
	nsAnim         = "urn:oasis:names:tc:opendocument:xmlns:animation:1.0"
	nsSMIL         = "urn:oasis:names:tc:opendocument:xmlns:smil-compatible:1.0"
	nsXLink        = "http://www.w3.org/1999/xlink"
	nsDC           = "http://purl.org/dc/elements/1.1/"
	nsMath         = "http://www.w3.org/1998/Math/MathML"
	nsXForms       = "http://www.w3.org/2002/xforms"
	nsXSD          = "http://www.w3.org/2001/XMLSchema"
	nsXSI          = "http://www.w3.org/2001/XMLSchema-instance"
	nsOOO          = "http://openoffice.org/2004/office"
	nsOOOW         = "http://openoffice.org/2004/writer"
	nsOOOC         = "http://openoffice.org/2004/calc"
	nsOfficeOOO    = "http://openoffice.org/2009/office"
	nsDrawOOO      = "http://openoffice.org/2010/draw"
	nsTableOOO     = "http://openoffice.org/2009/table"
	nsCalcExt      = "urn:org:documentfoundation:names:experimental:calc:xmlns:calcext:1.0"
	nsLOExt        = "urn:org:documentfoundation:names:experimental:office:xmlns:loext:1.0"
	nsField        = "urn:openoffice:names:experimental:ooo-ms-interop:xmlns:field:1.0"
	nsFormX        = "urn:openoffice:names:experimental:ooxml-odf-interop:xmlns:form:1.0"
	nsGRDDL        = "http://www.w3.org/2003/g/data-view#"
	nsCSS3T        = "http://www.w3.org/TR/css3-text/"
	nsDOM          = "http://www.w3.org/2001/xml-events"
	nsRPT          = "http://openoffice.org/2005/report"
	nsOF           = "urn:oasis:names:tc:opendocument:xmlns:of:1.2"
	nsXHTML        = "http://www.w3.org/1999/xhtml"
)

// odfPrefixes maps each namespace URI to its canonical prefix. The
// serializer declares every prefix used by a tree on its root element and
// generates ns0, ns1, ... prefixes for URIs outside this table.
var odfPrefixes = map[string]string{
	nsOffice:       "office",
	nsDraw:         "draw",
	nsText:         "text",
	nsSVG:          "svg",
	nsPresentation: "presentation",
	nsManifest:     "manifest",
	nsStyle:        "style",
	nsFO:           "fo",
	nsTable:        "table",
	nsMeta:         "meta",
	nsNumber:       "number",
	nsChart:        "chart",
	nsDr3D:         "dr3d",
	nsForm:         "form",
	nsScript:       "script",
	nsAnim:         "anim",
	nsSMIL:         "smil",
	nsXLink:        "xlink",
	nsDC:           "dc",
	nsMath:         "math",
	nsXForms:       "xforms",
	nsXSD:          "xsd",
	nsXSI:          "xsi",
	nsOOO:          "ooo",
	nsOOOW:         "ooow",
	nsOOOC:         "oooc",
	nsOfficeOOO:    "officeooo",
	nsDrawOOO:      "drawooo",
	nsTableOOO:     "tableooo",
	nsCalcExt:      "calcext",
	nsLOExt:        "loext",
	nsField:        "field",
	nsFormX:        "formx",
	nsGRDDL:        "grddl",
	nsCSS3T:        "css3t",
	nsDOM:          "dom",
	nsRPT:          "rpt",
	nsOF:           "of",
	nsXHTML:        "xhtml",
}

// Media type constants for the OpenDocument format.
const (
	// MediaTypePresentation is the mimetype of a finished .odp document.
	MediaTypePresentation = "application/vnd.oasis.opendocument.presentation"

	// MediaTypePresentationTemplate is the mimetype of a .otp template.
	MediaTypePresentationTemplate = "application/vnd.oasis.opendocument.presentation-template"

	// mediaTypeFallback is recorded in the manifest for assets whose
	// extension maps to no known media type.
	mediaTypeFallback = "application/octet-stream"
)

// Package member names mandated by the ODF packaging convention.
const (
	memberMimetype = "mimetype"
	memberContent  = "content.xml"
	memberManifest = "META-INF/manifest.xml"

	// pictureDir is the reserved package directory for embedded images.
	pictureDir = "Pictures"
)
